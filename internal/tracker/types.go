package tracker

import (
	"time"

	"medication-reminder/internal/model"
)

// TrackMedicationInput records one taken/missed event for a medication.
// ScheduledTime is optional; when empty the event is matched against the
// medication's first remaining slot for reminder purposes.
type TrackMedicationInput struct {
	MedicationID  string
	ScheduledTime string
	Taken         bool
	TakenAt       *time.Time
	Missed        bool
}

// TodayOutput is the daily tracking summary shown on the dashboard.
type TodayOutput struct {
	Date   string
	Events []model.MedicationEvent
	Water  model.WaterIntake
	Lunch  model.LunchEntry
}

// ReminderStatus is the per-slot state of a scheduled dose.
type ReminderStatus string

const (
	ReminderPending ReminderStatus = "pending"
	ReminderTaken   ReminderStatus = "taken"
	ReminderMissed  ReminderStatus = "missed"
)

// Reminder is one medication/time slot with its tracked status for today.
type Reminder struct {
	MedicationID   string
	MedicationName string
	Dosage         string
	ScheduledTime  string
	Status         ReminderStatus
}
