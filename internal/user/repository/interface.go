package repository

import (
	"context"

	"medication-reminder/internal/model"
)

// Repository is the interface for user data access operations.
type Repository interface {
	Insert(ctx context.Context, opt InsertOptions) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	UpdateProfile(ctx context.Context, opt UpdateProfileOptions) (model.User, error)
}
