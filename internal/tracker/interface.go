package tracker

import (
	"context"

	"medication-reminder/internal/model"
)

// UseCase defines the business logic interface for the tracker domain.
type UseCase interface {
	// TrackMedication records a taken/missed event for one of the user's
	// medications, denormalizing the medication name into the event.
	TrackMedication(ctx context.Context, sc model.Scope, input TrackMedicationInput) (model.MedicationEvent, error)

	// TrackWater sets today's water count to the given number of glasses.
	// Zero clears the day; negative counts are rejected.
	TrackWater(ctx context.Context, sc model.Scope, glasses int) (model.WaterIntake, error)

	// TrackLunch sets today's lunch flag.
	TrackLunch(ctx context.Context, sc model.Scope, eaten bool) (model.LunchEntry, error)

	// Today returns the day's tracking summary.
	Today(ctx context.Context, sc model.Scope) (TodayOutput, error)

	// Reminders returns the per-slot dose statuses for today.
	Reminders(ctx context.Context, sc model.Scope) ([]Reminder, error)
}

// MedicationStore is the slice of the medication domain the tracker needs.
type MedicationStore interface {
	List(ctx context.Context, sc model.Scope) ([]model.Medication, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Medication, error)
}
