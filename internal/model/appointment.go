package model

import "time"

// AppointmentStatus is the lifecycle state of a booked appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a doctor appointment booked by a user.
type Appointment struct {
	ID           string
	UserID       string
	DoctorName   string
	Date         string // "2006-01-02"
	Time         string // "15:04"
	Reason       string
	Type         string // e.g. "checkup", "follow-up"
	Status       AppointmentStatus
	CalendarLink string // Google Calendar event link when synced
	CreatedAt    time.Time
}
