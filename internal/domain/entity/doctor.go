package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is the doctor record. Appointments reference the linked UserID,
// not ID.
type Doctor struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	LicenseNumber string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Schedule      ScheduleConfig `gorm:"type:jsonb;not null;default:'{}'" json:"schedule"`
	Active        bool           `gorm:"not null;default:true;index" json:"active"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User        User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specialties []Specialty `gorm:"many2many:doctor_specialties;" json:"specialties,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// BlockDuration is the first linked specialty's duration, or fallback.
func (d *Doctor) BlockDuration(fallback int) int {
	if len(d.Specialties) > 0 && d.Specialties[0].DurationMinutes > 0 {
		return d.Specialties[0].DurationMinutes
	}
	return fallback
}

func (d *Doctor) DisplayName() string {
	return "Dr. " + d.User.FullName()
}
