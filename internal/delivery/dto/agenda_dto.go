package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type BlocksQuery struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Fecha    string `json:"fecha" validate:"required,datetime=2006-01-02"`
}

type AppointmentsQuery struct {
	Fecha    string `json:"fecha" validate:"required,datetime=2006-01-02"`
	DoctorID string `json:"doctorId"`
}

type TimeRangeRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type UpdateScheduleRequest struct {
	Horarios map[string][]TimeRangeRequest `json:"horarios" validate:"required,dive,dive"`
}

// Response DTOs

type DoctorSummary struct {
	ID     uuid.UUID `json:"id"`
	Nombre string    `json:"nombre"`
	Email  string    `json:"email"`
}

type BlockAppointmentResponse struct {
	ID       uuid.UUID       `json:"id"`
	Paciente PatientSummary  `json:"paciente"`
	Servicio string          `json:"servicio"`
	Estado   string          `json:"estado"`
	Costo    decimal.Decimal `json:"costo"`
}

type PatientSummary struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	Documento string    `json:"documento"`
}

type BlockResponse struct {
	Hora     string                    `json:"hora"`
	Duracion int                       `json:"duracion"`
	Estado   string                    `json:"estado"`
	Cita     *BlockAppointmentResponse `json:"cita,omitempty"`
}

type BlocksResponse struct {
	Doctor         DoctorSummary   `json:"doctor"`
	Fecha          string          `json:"fecha"`
	DuracionBloque int             `json:"duracionBloque,omitempty"`
	Bloques        []BlockResponse `json:"bloques"`
	Mensaje        string          `json:"mensaje,omitempty"`
}

type AppointmentResponse struct {
	ID           uuid.UUID       `json:"id"`
	Paciente     PatientSummary  `json:"paciente"`
	DoctorID     *uuid.UUID      `json:"doctorId"`
	DoctorNombre string          `json:"doctorNombre"`
	Fecha        string          `json:"fecha"`
	Hora         string          `json:"hora"`
	Duracion     int             `json:"duracion"`
	Estado       string          `json:"estado"`
	Especialidad string          `json:"especialidad,omitempty"`
	Examen       string          `json:"examen,omitempty"`
	Costo        decimal.Decimal `json:"costo"`
	Motivo       string          `json:"motivo,omitempty"`
}

type AppointmentListResponse struct {
	Citas []AppointmentResponse `json:"citas"`
	Total int                   `json:"total"`
}

type SpecialtyResponse struct {
	ID       uuid.UUID       `json:"id"`
	Nombre   string          `json:"nombre"`
	Duracion int             `json:"duracion"`
	Costo    decimal.Decimal `json:"costo"`
}

type DoctorResponse struct {
	ID             uuid.UUID           `json:"id"`
	UsuarioID      uuid.UUID           `json:"usuarioId"`
	Nombre         string              `json:"nombre"`
	Email          string              `json:"email"`
	Licencia       string              `json:"licencia"`
	Especialidades []SpecialtyResponse `json:"especialidades"`
}

type DoctorListResponse struct {
	Doctores []DoctorResponse `json:"doctores"`
}

type ScheduleResponse struct {
	DoctorID uuid.UUID                     `json:"doctorId"`
	Horarios map[string][]TimeRangeRequest `json:"horarios"`
}
