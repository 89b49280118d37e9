package repository

import (
	"context"

	"hospital-agenda/internal/domain/entity"
	domainRepo "hospital-agenda/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) FindActiveByDate(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.WithContext(ctx).
		Where("appointments.date = ?", filter.Date).
		Where("appointments.status NOT IN ?", entity.InactiveAppointmentStatuses)

	if filter.DoctorUserID != nil {
		query = query.Where("appointments.doctor_id = ?", *filter.DoctorUserID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.
		Preload("Patient").
		Preload("Doctor").
		Preload("Specialty").
		Preload("Exam").
		Order("appointments.time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
