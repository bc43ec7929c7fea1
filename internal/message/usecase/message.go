package usecase

import (
	"context"
	"errors"
	"strings"

	"medication-reminder/internal/message"
	"medication-reminder/internal/message/repository"
	"medication-reminder/internal/model"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Message, error) {
	return uc.repo.List(ctx, sc.UserID)
}

func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input message.SendInput) (model.Message, error) {
	if strings.TrimSpace(input.Body) == "" {
		return model.Message{}, message.ErrBodyRequired
	}

	return uc.repo.Insert(ctx, repository.InsertOptions{
		UserID:     sc.UserID,
		DoctorName: input.DoctorName,
		Body:       strings.TrimSpace(input.Body),
	})
}

func (uc *implUseCase) Reply(ctx context.Context, sc model.Scope, id string, input message.ReplyInput) (model.Message, error) {
	if strings.TrimSpace(input.Reply) == "" {
		return model.Message{}, message.ErrBodyRequired
	}

	msg, err := uc.repo.SetReply(ctx, sc.UserID, id, strings.TrimSpace(input.Reply))
	if errors.Is(err, repository.ErrNotFound) {
		return model.Message{}, message.ErrNotFound
	}
	return msg, err
}
