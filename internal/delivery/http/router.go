package http

import (
	"net/http"

	"hospital-agenda/internal/delivery/http/handler"
	"hospital-agenda/internal/delivery/http/middleware"
	"hospital-agenda/internal/domain/entity"
	"hospital-agenda/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	authHandler    *handler.AuthHandler
	agendaHandler  *handler.AgendaHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	agendaHandler *handler.AgendaHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		authHandler:    authHandler,
		agendaHandler:  agendaHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Agenda routes (protected - appointments permission)
	agenda := api.PathPrefix("/agenda").Subrouter()
	agenda.Use(r.authMiddleware.Authenticate)
	agenda.Use(middleware.RequirePermission(entity.PermissionAppointments))
	agenda.HandleFunc("/bloques/{doctorId}", r.agendaHandler.GetBlocks).Methods(http.MethodGet)
	agenda.HandleFunc("/citas", r.agendaHandler.GetAppointments).Methods(http.MethodGet)
	agenda.HandleFunc("/doctores", r.agendaHandler.GetDoctors).Methods(http.MethodGet)

	// Schedule authoring (agenda admin)
	agenda.Handle("/doctores/{doctorId}/horarios",
		middleware.RequirePermission(entity.PermissionAgendaAdmin)(http.HandlerFunc(r.agendaHandler.UpdateSchedule)),
	).Methods(http.MethodPut)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
