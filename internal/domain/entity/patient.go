package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName      string    `gorm:"type:varchar(120);not null" json:"first_name"`
	LastName       string    `gorm:"type:varchar(120);not null" json:"last_name"`
	DocumentNumber string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"document_number"`
	Phone          string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email          string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
