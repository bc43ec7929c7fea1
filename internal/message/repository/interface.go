package repository

import (
	"context"

	"medication-reminder/internal/model"
)

// Repository is the interface for message data access operations.
type Repository interface {
	Insert(ctx context.Context, opt InsertOptions) (model.Message, error)
	List(ctx context.Context, userID string) ([]model.Message, error)
	SetReply(ctx context.Context, userID, id, reply string) (model.Message, error)
}
