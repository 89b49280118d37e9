package repository

import (
	"context"
	"errors"

	"hospital-agenda/internal/domain/entity"
	domainRepo "hospital-agenda/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

// specialtiesByName fixes the preload order; the first specialty sets the block size.
func specialtiesByName(tx *gorm.DB) *gorm.DB {
	return tx.Order("specialties.name ASC")
}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.WithContext(ctx).
		Preload("User").
		Preload("Specialties", specialtiesByName).
		Where("id = ?", id).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// FindAllActive returns doctors whose record and user account are both active.
func (r *doctorRepository) FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.WithContext(ctx).
		Joins("JOIN users ON users.id = doctors.user_id").
		Where("doctors.active = ? AND users.is_active = ?", true, true).
		Preload("User").
		Preload("Specialties", specialtiesByName).
		Order("users.first_name ASC, users.last_name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) UpdateSchedule(ctx context.Context, db *gorm.DB, id uuid.UUID, schedule entity.ScheduleConfig) error {
	result := db.WithContext(ctx).
		Model(&entity.Doctor{}).
		Where("id = ?", id).
		Update("schedule", schedule)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
