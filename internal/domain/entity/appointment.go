package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus values are set by other services; the agenda only reads them.
type AppointmentStatus string

const (
	AppointmentScheduled     AppointmentStatus = "Programada"
	AppointmentConfirmed     AppointmentStatus = "Confirmada"
	AppointmentWaiting       AppointmentStatus = "EnEspera"
	AppointmentInProgress    AppointmentStatus = "EnCurso"
	AppointmentCompleted     AppointmentStatus = "Completada"
	AppointmentCancelled     AppointmentStatus = "Cancelada"
	AppointmentNoShow        AppointmentStatus = "NoAsistio"
	AppointmentToBeScheduled AppointmentStatus = "PorAgendar"
)

// InactiveAppointmentStatuses never occupy a block nor appear in day lists.
var InactiveAppointmentStatuses = []AppointmentStatus{AppointmentCancelled, AppointmentNoShow}

const UnassignedDoctorName = "Sin asignar"

type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        *uuid.UUID        `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	SpecialtyID     *uuid.UUID        `gorm:"type:uuid" json:"specialty_id,omitempty"`
	ExamID          *uuid.UUID        `gorm:"type:uuid" json:"exam_id,omitempty"`
	Date            time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time            time.Time         `gorm:"type:timestamptz;not null" json:"time"`
	DurationMinutes int               `gorm:"not null;default:30" json:"duration_minutes"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'Programada';index" json:"status"`
	Cost            decimal.Decimal   `gorm:"type:decimal(12,2);not null;default:0" json:"cost"`
	Reason          string            `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships. DoctorID points at users.id (the doctor's account).
	Patient   Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor    *User      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Specialty *Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	Exam      *Exam      `gorm:"foreignKey:ExamID" json:"exam,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsActive reports whether the appointment can occupy agenda time.
func (a *Appointment) IsActive() bool {
	for _, s := range InactiveAppointmentStatuses {
		if a.Status == s {
			return false
		}
	}
	return true
}

// ClockLabel normalizes the stored time to local "HH:MM".
func (a *Appointment) ClockLabel(loc *time.Location) string {
	return a.Time.In(loc).Format(ClockLayout)
}

// ServiceName is the linked specialty or exam name, whichever is set.
func (a *Appointment) ServiceName() string {
	if a.Specialty != nil {
		return a.Specialty.Name
	}
	if a.Exam != nil {
		return a.Exam.Name
	}
	return ""
}

func (a *Appointment) DoctorDisplayName() string {
	if a.Doctor == nil || a.Doctor.FullName() == "" {
		return UnassignedDoctorName
	}
	return "Dr. " + a.Doctor.FullName()
}
