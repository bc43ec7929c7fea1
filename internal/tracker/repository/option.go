package repository

import "time"

// InsertMedicationEventOptions holds the parameters for recording one
// taken/missed event.
type InsertMedicationEventOptions struct {
	UserID         string
	Date           string // "2006-01-02"
	MedicationID   string
	MedicationName string
	ScheduledTime  string
	Taken          bool
	TakenAt        *time.Time
	Missed         bool
}

// ListMedicationEventsOptions filters events by user and day.
type ListMedicationEventsOptions struct {
	UserID string
	Date   string
}

// SetWaterOptions holds the parameters for the water upsert.
type SetWaterOptions struct {
	UserID  string
	Date    string
	Glasses int
}

// SetLunchOptions holds the parameters for the lunch upsert.
type SetLunchOptions struct {
	UserID string
	Date   string
	Eaten  bool
	Time   *time.Time
}
