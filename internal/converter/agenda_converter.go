package converter

import (
	"time"

	"hospital-agenda/internal/delivery/dto"
	"hospital-agenda/internal/domain/entity"
)

// DoctorToSummary converts a Doctor entity to the summary attached to block responses
func DoctorToSummary(doctor *entity.Doctor) dto.DoctorSummary {
	return dto.DoctorSummary{
		ID:     doctor.ID,
		Nombre: doctor.DisplayName(),
		Email:  doctor.User.Email,
	}
}

// BlocksToResponses converts generated blocks to their wire shape
func BlocksToResponses(blocks []entity.ScheduleBlock) []dto.BlockResponse {
	responses := make([]dto.BlockResponse, len(blocks))
	for i, block := range blocks {
		responses[i] = dto.BlockResponse{
			Hora:     block.Time,
			Duracion: block.DurationMinutes,
			Estado:   string(block.State),
		}
		if block.Appointment != nil {
			responses[i].Cita = &dto.BlockAppointmentResponse{
				ID: block.Appointment.ID,
				Paciente: dto.PatientSummary{
					ID:        block.Appointment.PatientID,
					Nombre:    block.Appointment.PatientName,
					Documento: block.Appointment.PatientDocument,
				},
				Servicio: block.Appointment.ServiceName,
				Estado:   string(block.Appointment.Status),
				Costo:    block.Appointment.Cost,
			}
		}
	}
	return responses
}

// AppointmentToResponse converts an Appointment entity, rendering date and time in loc
func AppointmentToResponse(appointment *entity.Appointment, loc *time.Location) dto.AppointmentResponse {
	response := dto.AppointmentResponse{
		ID: appointment.ID,
		Paciente: dto.PatientSummary{
			ID:        appointment.PatientID,
			Nombre:    appointment.Patient.FullName(),
			Documento: appointment.Patient.DocumentNumber,
		},
		DoctorID:     appointment.DoctorID,
		DoctorNombre: appointment.DoctorDisplayName(),
		Fecha:        appointment.Date.Format(entity.DateLayout),
		Hora:         appointment.ClockLabel(loc),
		Duracion:     appointment.DurationMinutes,
		Estado:       string(appointment.Status),
		Costo:        appointment.Cost,
		Motivo:       appointment.Reason,
	}
	if appointment.Specialty != nil {
		response.Especialidad = appointment.Specialty.Name
	}
	if appointment.Exam != nil {
		response.Examen = appointment.Exam.Name
	}
	return response
}

func AppointmentsToResponses(appointments []entity.Appointment, loc *time.Location) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = AppointmentToResponse(&appointments[i], loc)
	}
	return responses
}
