package model

import "time"

// MedicationEvent is one taken/missed record for a medication on a given day.
// MedicationName is denormalized at insert time so history survives
// medication deletion.
type MedicationEvent struct {
	ID             string
	UserID         string
	Date           string // calendar day, "2006-01-02"
	MedicationID   string
	MedicationName string
	ScheduledTime  string
	Taken          bool
	TakenAt        *time.Time
	Missed         bool
}

// WaterIntake is the per-day glass count, upserted on (user, date).
type WaterIntake struct {
	UserID  string
	Date    string
	Glasses int
}

// LunchEntry is the per-day lunch flag, upserted on (user, date).
type LunchEntry struct {
	UserID string
	Date   string
	Eaten  bool
	Time   *time.Time
}
