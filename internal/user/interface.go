package user

import (
	"context"

	"medication-reminder/internal/model"
)

// UseCase defines the business logic interface for the user domain.
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	Profile(ctx context.Context, sc model.Scope) (UserOutput, error)
	UpdateProfile(ctx context.Context, sc model.Scope, input UpdateProfileInput) (UserOutput, error)
}
