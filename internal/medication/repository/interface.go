package repository

import (
	"context"

	"medication-reminder/internal/model"
)

// Repository is the interface for medication data access operations.
// Every operation is scoped to the owning user.
type Repository interface {
	Insert(ctx context.Context, opt InsertOptions) (model.Medication, error)
	List(ctx context.Context, userID string) ([]model.Medication, error)
	Get(ctx context.Context, userID, id string) (model.Medication, error)
	Update(ctx context.Context, opt UpdateOptions) (model.Medication, error)
	Delete(ctx context.Context, userID, id string) error
}
