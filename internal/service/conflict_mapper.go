package service

import (
	"time"

	"hospital-agenda/internal/domain/entity"
)

// OccupancyIndex maps a local "HH:MM" label to the appointment starting
// there. It is built once per request from the doctor's appointments for
// the day; inactive appointments are ignored.
type OccupancyIndex struct {
	byClock map[string]*entity.Appointment
}

// NewOccupancyIndex keeps the first appointment per label, matching a
// linear first-match scan over the same list.
func NewOccupancyIndex(appointments []entity.Appointment, loc *time.Location) *OccupancyIndex {
	idx := &OccupancyIndex{byClock: make(map[string]*entity.Appointment, len(appointments))}
	for i := range appointments {
		appointment := &appointments[i]
		if !appointment.IsActive() {
			continue
		}
		label := appointment.ClockLabel(loc)
		if _, taken := idx.byClock[label]; taken {
			continue
		}
		idx.byClock[label] = appointment
	}
	return idx
}

func (idx *OccupancyIndex) Lookup(label string) (*entity.Appointment, bool) {
	if idx == nil {
		return nil, false
	}
	appointment, ok := idx.byClock[label]
	return appointment, ok
}

func (idx *OccupancyIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.byClock)
}

// SummarizeAppointment maps an appointment to the record attached to an
// occupied block.
func SummarizeAppointment(appointment *entity.Appointment) *entity.BlockAppointment {
	return &entity.BlockAppointment{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		PatientName:     appointment.Patient.FullName(),
		PatientDocument: appointment.Patient.DocumentNumber,
		ServiceName:     appointment.ServiceName(),
		Status:          appointment.Status,
		Cost:            appointment.Cost,
	}
}
