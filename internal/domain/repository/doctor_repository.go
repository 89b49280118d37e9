package repository

import (
	"context"

	"hospital-agenda/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error)
	UpdateSchedule(ctx context.Context, db *gorm.DB, id uuid.UUID, schedule entity.ScheduleConfig) error
}
