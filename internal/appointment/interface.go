package appointment

import (
	"context"

	"medication-reminder/internal/model"
)

// UseCase defines the business logic interface for the appointment domain.
type UseCase interface {
	List(ctx context.Context, sc model.Scope) ([]model.Appointment, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Appointment, error)
	UpdateStatus(ctx context.Context, sc model.Scope, id string, input UpdateStatusInput) (model.Appointment, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
