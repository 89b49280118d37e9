package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BlockState string

const (
	BlockAvailable BlockState = "disponible"
	BlockOccupied  BlockState = "ocupado"
)

// ScheduleBlock is a derived bookable slot; it is never persisted.
type ScheduleBlock struct {
	Time            string
	DurationMinutes int
	State           BlockState
	Appointment     *BlockAppointment
}

// BlockAppointment summarizes the appointment occupying a block.
type BlockAppointment struct {
	ID              uuid.UUID
	PatientID       uuid.UUID
	PatientName     string
	PatientDocument string
	ServiceName     string
	Status          AppointmentStatus
	Cost            decimal.Decimal
}

func (b ScheduleBlock) IsOccupied() bool {
	return b.State == BlockOccupied
}
