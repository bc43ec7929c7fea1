package message

import (
	"context"

	"medication-reminder/internal/model"
)

// UseCase defines the business logic interface for the message domain.
type UseCase interface {
	List(ctx context.Context, sc model.Scope) ([]model.Message, error)
	Send(ctx context.Context, sc model.Scope, input SendInput) (model.Message, error)
	Reply(ctx context.Context, sc model.Scope, id string, input ReplyInput) (model.Message, error)
}
