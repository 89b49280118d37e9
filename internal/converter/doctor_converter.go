package converter

import (
	"hospital-agenda/internal/delivery/dto"
	"hospital-agenda/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) dto.DoctorResponse {
	specialties := make([]dto.SpecialtyResponse, len(doctor.Specialties))
	for i, specialty := range doctor.Specialties {
		specialties[i] = dto.SpecialtyResponse{
			ID:       specialty.ID,
			Nombre:   specialty.Name,
			Duracion: specialty.DurationMinutes,
			Costo:    specialty.Cost,
		}
	}

	return dto.DoctorResponse{
		ID:             doctor.ID,
		UsuarioID:      doctor.UserID,
		Nombre:         doctor.DisplayName(),
		Email:          doctor.User.Email,
		Licencia:       doctor.LicenseNumber,
		Especialidades: specialties,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = DoctorToResponse(&doctors[i])
	}
	return responses
}
