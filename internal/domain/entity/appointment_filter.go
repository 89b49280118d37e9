package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for per-day appointment reads.
type AppointmentFilter struct {
	Date         string     // Format: YYYY-MM-DD
	DoctorUserID *uuid.UUID // account id of the doctor, nil for all doctors
	Limit        int
}
