package handler

import (
	"encoding/json"
	"net/http"

	"hospital-agenda/internal/delivery/dto"
	"hospital-agenda/internal/delivery/http/middleware"
	"hospital-agenda/internal/usecase"
	"hospital-agenda/pkg/response"
	"hospital-agenda/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AgendaHandler struct {
	agendaUsecase usecase.AgendaUsecase
	validator     *validator.CustomValidator
}

func NewAgendaHandler(agendaUsecase usecase.AgendaUsecase, validator *validator.CustomValidator) *AgendaHandler {
	return &AgendaHandler{
		agendaUsecase: agendaUsecase,
		validator:     validator,
	}
}

// GetBlocks resolves a doctor's schedule blocks for one day
// @Summary Get schedule blocks
// @Tags Agenda
// @Security BearerAuth
// @Produce json
// @Param doctorId path string true "Doctor ID"
// @Param fecha query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /agenda/bloques/{doctorId} [get]
func (h *AgendaHandler) GetBlocks(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	query := dto.BlocksQuery{
		DoctorID: mux.Vars(r)["doctorId"],
		Fecha:    r.URL.Query().Get("fecha"),
	}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctorID, err := uuid.Parse(query.DoctorID)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID de doctor inválido")
		return
	}

	blocks, err := h.agendaUsecase.ResolveBlocks(r.Context(), principal, doctorID, query.Fecha)
	if err != nil {
		response.FromError(w, err, "Error al obtener los bloques de agenda")
		return
	}

	response.Success(w, http.StatusOK, "", blocks)
}

// GetAppointments lists the active appointments of a day
// @Summary List appointments for a date
// @Tags Agenda
// @Security BearerAuth
// @Produce json
// @Param fecha query string true "Date (YYYY-MM-DD)"
// @Param doctorId query string false "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /agenda/citas [get]
func (h *AgendaHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	query := dto.AppointmentsQuery{
		Fecha:    r.URL.Query().Get("fecha"),
		DoctorID: r.URL.Query().Get("doctorId"),
	}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	var doctorID *uuid.UUID
	if query.DoctorID != "" {
		parsed, err := uuid.Parse(query.DoctorID)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "ID de doctor inválido")
			return
		}
		doctorID = &parsed
	}

	appointments, err := h.agendaUsecase.ListAppointments(r.Context(), principal, query.Fecha, doctorID)
	if err != nil {
		response.FromError(w, err, "Error al obtener las citas")
		return
	}

	response.Success(w, http.StatusOK, "", appointments)
}

// GetDoctors lists active doctors with their specialties
// @Summary List active doctors
// @Tags Agenda
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /agenda/doctores [get]
func (h *AgendaHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	doctors, err := h.agendaUsecase.ListDoctors(r.Context(), principal)
	if err != nil {
		response.FromError(w, err, "Error al obtener los doctores")
		return
	}

	response.Success(w, http.StatusOK, "", doctors)
}

func (h *AgendaHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	doctorID, err := uuid.Parse(mux.Vars(r)["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID de doctor inválido")
		return
	}

	var req dto.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.agendaUsecase.UpdateSchedule(r.Context(), principal, doctorID, &req)
	if err != nil {
		response.FromError(w, err, "Error al actualizar el horario")
		return
	}

	response.Success(w, http.StatusOK, "Horario actualizado correctamente", schedule)
}
