package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-agenda/config"
	"hospital-agenda/internal/delivery/http/handler"
	"hospital-agenda/internal/delivery/http/middleware"
	"hospital-agenda/pkg/jwt"
	"hospital-agenda/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func setupRouter() http.Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "router-secret", AccessExpiry: time.Minute})
	v := validator.NewValidator()

	return NewRouter(
		handler.NewAuthHandler(nil, v),
		handler.NewAgendaHandler(nil, v),
		middleware.NewAuthMiddleware(jwtService, nil, log),
		middleware.NewCORSMiddleware(),
	).Setup()
}

func TestRouter_HealthIsPublic(t *testing.T) {
	rec := httptest.NewRecorder()
	setupRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_AgendaRequiresAuthentication(t *testing.T) {
	router := setupRouter()

	for _, target := range []string{
		"/api/v1/agenda/bloques/6f1c2b1e-8a3d-4c55-9e0f-2b7d7f3f0a11?fecha=2024-03-18",
		"/api/v1/agenda/citas?fecha=2024-03-18",
		"/api/v1/agenda/doctores",
		"/api/v1/auth/me",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}
