package medication

import (
	"context"

	"medication-reminder/internal/model"
)

// UseCase defines the business logic interface for the medication domain.
// List and Detail double as the read surface the voice and tracker domains
// consume.
type UseCase interface {
	List(ctx context.Context, sc model.Scope) ([]model.Medication, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Medication, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Medication, error)
	Update(ctx context.Context, sc model.Scope, id string, input UpdateInput) (model.Medication, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
