package usecase

import (
	"context"
	"errors"

	"medication-reminder/internal/model"
	"medication-reminder/internal/user"
	"medication-reminder/internal/user/repository"
)

func (uc *implUseCase) Profile(ctx context.Context, sc model.Scope) (user.UserOutput, error) {
	u, err := uc.repo.GetByID(ctx, sc.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return user.UserOutput{}, user.ErrNotFound
	}
	if err != nil {
		return user.UserOutput{}, err
	}
	return toOutput(u), nil
}

func (uc *implUseCase) UpdateProfile(ctx context.Context, sc model.Scope, input user.UpdateProfileInput) (user.UserOutput, error) {
	u, err := uc.repo.UpdateProfile(ctx, repository.UpdateProfileOptions{
		ID:       sc.UserID,
		Name:     input.Name,
		Age:      input.Age,
		Phone:    input.Phone,
		Diseases: input.Diseases,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return user.UserOutput{}, user.ErrNotFound
	}
	if err != nil {
		return user.UserOutput{}, err
	}
	return toOutput(u), nil
}
