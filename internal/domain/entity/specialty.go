package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Specialty struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string          `gorm:"type:varchar(120);uniqueIndex;not null" json:"name"`
	DurationMinutes int             `gorm:"not null;default:30" json:"duration_minutes"`
	Cost            decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"cost"`
}

func (Specialty) TableName() string {
	return "specialties"
}

type ExamKind string

const (
	ExamKindExam      ExamKind = "examen"
	ExamKindProcedure ExamKind = "procedimiento"
)

// Exam is a bookable exam or procedure.
type Exam struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string          `gorm:"type:varchar(160);not null" json:"name"`
	Kind            ExamKind        `gorm:"type:varchar(20);not null;default:'examen'" json:"kind"`
	DurationMinutes int             `gorm:"not null;default:30" json:"duration_minutes"`
	Cost            decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"cost"`
}

func (Exam) TableName() string {
	return "exams"
}
