package repository

import "medication-reminder/internal/model"

// InsertOptions holds the parameters for booking an appointment.
type InsertOptions struct {
	UserID     string
	DoctorName string
	Date       string
	Time       string
	Reason     string
	Type       string
	Status     model.AppointmentStatus
}
