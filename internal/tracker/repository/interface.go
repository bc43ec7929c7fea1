package repository

import (
	"context"

	"medication-reminder/internal/model"
)

// Repository is the interface for tracker data access operations.
type Repository interface {
	InsertMedicationEvent(ctx context.Context, opt InsertMedicationEventOptions) (model.MedicationEvent, error)
	ListMedicationEvents(ctx context.Context, opt ListMedicationEventsOptions) ([]model.MedicationEvent, error)

	// SetWater upserts the (user, date) row with the day's absolute count.
	SetWater(ctx context.Context, opt SetWaterOptions) (model.WaterIntake, error)
	GetWater(ctx context.Context, userID, date string) (model.WaterIntake, error)

	SetLunch(ctx context.Context, opt SetLunchOptions) (model.LunchEntry, error)
	GetLunch(ctx context.Context, userID, date string) (model.LunchEntry, error)
}
