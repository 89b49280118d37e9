package repository

import (
	"context"

	"hospital-agenda/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	// FindActiveByDate excludes cancelled and no-show appointments.
	FindActiveByDate(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
}
