package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-agenda/internal/delivery/dto"
	"hospital-agenda/internal/delivery/http/middleware"
	"hospital-agenda/internal/domain/entity"
	"hospital-agenda/internal/usecase"
	"hospital-agenda/pkg/response"
	"hospital-agenda/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAgendaUsecase is a mock implementation of AgendaUsecase
type MockAgendaUsecase struct {
	mock.Mock
}

func (m *MockAgendaUsecase) ResolveBlocks(ctx context.Context, principal *entity.Principal, doctorID uuid.UUID, fecha string) (*dto.BlocksResponse, error) {
	args := m.Called(ctx, principal, doctorID, fecha)
	resp, _ := args.Get(0).(*dto.BlocksResponse)
	return resp, args.Error(1)
}

func (m *MockAgendaUsecase) ListAppointments(ctx context.Context, principal *entity.Principal, fecha string, doctorID *uuid.UUID) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, principal, fecha, doctorID)
	resp, _ := args.Get(0).(*dto.AppointmentListResponse)
	return resp, args.Error(1)
}

func (m *MockAgendaUsecase) ListDoctors(ctx context.Context, principal *entity.Principal) (*dto.DoctorListResponse, error) {
	args := m.Called(ctx, principal)
	resp, _ := args.Get(0).(*dto.DoctorListResponse)
	return resp, args.Error(1)
}

func (m *MockAgendaUsecase) UpdateSchedule(ctx context.Context, principal *entity.Principal, doctorID uuid.UUID, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	args := m.Called(ctx, principal, doctorID, req)
	resp, _ := args.Get(0).(*dto.ScheduleResponse)
	return resp, args.Error(1)
}

var testPrincipal = &entity.Principal{
	UserID:      uuid.MustParse("6f1c2b1e-8a3d-4c55-9e0f-2b7d7f3f0a11"),
	RoleID:      entity.RoleIDReceptionist,
	Permissions: []string{entity.PermissionAppointments},
}

func setupAgendaRouter() (*mux.Router, *MockAgendaUsecase) {
	uc := &MockAgendaUsecase{}
	h := NewAgendaHandler(uc, validator.NewValidator())

	router := mux.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithPrincipal(r.Context(), testPrincipal)))
		})
	})
	router.HandleFunc("/agenda/bloques/{doctorId}", h.GetBlocks).Methods(http.MethodGet)
	router.HandleFunc("/agenda/citas", h.GetAppointments).Methods(http.MethodGet)
	router.HandleFunc("/agenda/doctores", h.GetDoctors).Methods(http.MethodGet)
	router.HandleFunc("/agenda/doctores/{doctorId}/horarios", h.UpdateSchedule).Methods(http.MethodPut)
	return router, uc
}

func serve(router http.Handler, method, target string, body string) (*httptest.ResponseRecorder, response.Response) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp response.Response
	json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestGetBlocks_Success(t *testing.T) {
	router, uc := setupAgendaRouter()
	doctorID := uuid.New()

	uc.On("ResolveBlocks", mock.Anything, testPrincipal, doctorID, "2024-03-18").Return(&dto.BlocksResponse{
		Fecha:          "2024-03-18",
		DuracionBloque: 30,
		Bloques: []dto.BlockResponse{
			{Hora: "09:00", Duracion: 30, Estado: "disponible"},
		},
	}, nil)

	rec, resp := serve(router, http.MethodGet, "/agenda/bloques/"+doctorID.String()+"?fecha=2024-03-18", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	var payload struct {
		Data dto.BlocksResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 30, payload.Data.DuracionBloque)
	require.Len(t, payload.Data.Bloques, 1)
	assert.Equal(t, "09:00", payload.Data.Bloques[0].Hora)
	uc.AssertExpectations(t)
}

func TestGetBlocks_BadRequest(t *testing.T) {
	router, uc := setupAgendaRouter()
	doctorID := uuid.New().String()

	tests := []struct {
		name   string
		target string
	}{
		{name: "missing fecha", target: "/agenda/bloques/" + doctorID},
		{name: "malformed fecha", target: "/agenda/bloques/" + doctorID + "?fecha=18-03-2024"},
		{name: "malformed doctor id", target: "/agenda/bloques/not-a-uuid?fecha=2024-03-18"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
		})
	}
	uc.AssertNotCalled(t, "ResolveBlocks", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetBlocks_MalformedDoctorID(t *testing.T) {
	router, uc := setupAgendaRouter()

	rec, resp := serve(router, http.MethodGet, "/agenda/bloques/not-a-uuid?fecha=2024-03-18", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ID de doctor inválido", resp.Error)
	uc.AssertNotCalled(t, "ResolveBlocks", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetBlocks_ErrorMapping(t *testing.T) {
	router, uc := setupAgendaRouter()
	missing := uuid.New()
	broken := uuid.New()

	uc.On("ResolveBlocks", mock.Anything, mock.Anything, missing, "2024-03-18").Return(nil, usecase.ErrDoctorNotFound)
	uc.On("ResolveBlocks", mock.Anything, mock.Anything, broken, "2024-03-18").Return(nil, errors.New("pq: connection refused"))

	rec, resp := serve(router, http.MethodGet, "/agenda/bloques/"+missing.String()+"?fecha=2024-03-18", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Doctor no encontrado", resp.Error)

	rec, resp = serve(router, http.MethodGet, "/agenda/bloques/"+broken.String()+"?fecha=2024-03-18", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, resp.Error, "pq:")
}

func TestGetAppointments(t *testing.T) {
	router, uc := setupAgendaRouter()
	doctorID := uuid.New()

	uc.On("ListAppointments", mock.Anything, testPrincipal, "2024-03-18", (*uuid.UUID)(nil)).
		Return(&dto.AppointmentListResponse{Citas: []dto.AppointmentResponse{}, Total: 0}, nil)
	uc.On("ListAppointments", mock.Anything, testPrincipal, "2024-03-18", &doctorID).
		Return(&dto.AppointmentListResponse{Citas: []dto.AppointmentResponse{{Hora: "08:00"}}, Total: 1}, nil)

	rec, resp := serve(router, http.MethodGet, "/agenda/citas?fecha=2024-03-18", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	rec, _ = serve(router, http.MethodGet, "/agenda/citas?fecha=2024-03-18&doctorId="+doctorID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)

	rec, _ = serve(router, http.MethodGet, "/agenda/citas", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, resp = serve(router, http.MethodGet, "/agenda/citas?fecha=2024-03-18&doctorId=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ID de doctor inválido", resp.Error)

	uc.AssertNumberOfCalls(t, "ListAppointments", 2)
}

func TestGetDoctors(t *testing.T) {
	router, uc := setupAgendaRouter()

	uc.On("ListDoctors", mock.Anything, testPrincipal).Return(&dto.DoctorListResponse{
		Doctores: []dto.DoctorResponse{{Nombre: "Dr. Ana Rojas"}},
	}, nil)

	rec, resp := serve(router, http.MethodGet, "/agenda/doctores", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Contains(t, rec.Body.String(), "Dr. Ana Rojas")
}

func TestUpdateSchedule(t *testing.T) {
	router, uc := setupAgendaRouter()
	doctorID := uuid.New()

	uc.On("UpdateSchedule", mock.Anything, testPrincipal, doctorID, mock.MatchedBy(func(req *dto.UpdateScheduleRequest) bool {
		return len(req.Horarios["lunes"]) == 1 && req.Horarios["lunes"][0].Start == "08:00"
	})).Return(&dto.ScheduleResponse{DoctorID: doctorID}, nil)

	body := `{"horarios":{"lunes":[{"start":"08:00","end":"12:00"}]}}`
	rec, resp := serve(router, http.MethodPut, "/agenda/doctores/"+doctorID.String()+"/horarios", body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	rec, _ = serve(router, http.MethodPut, "/agenda/doctores/"+doctorID.String()+"/horarios", `{"horarios":{"lunes":[{"start":"08:00"}]}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = serve(router, http.MethodPut, "/agenda/doctores/"+doctorID.String()+"/horarios", `{"horarios":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	uc.AssertNumberOfCalls(t, "UpdateSchedule", 1)
}
