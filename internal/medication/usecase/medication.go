package usecase

import (
	"context"
	"errors"
	"strings"

	"medication-reminder/internal/medication"
	"medication-reminder/internal/medication/repository"
	"medication-reminder/internal/model"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Medication, error) {
	return uc.repo.List(ctx, sc.UserID)
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Medication, error) {
	med, err := uc.repo.Get(ctx, sc.UserID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Medication{}, medication.ErrNotFound
	}
	return med, err
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input medication.CreateInput) (model.Medication, error) {
	if strings.TrimSpace(input.Name) == "" {
		return model.Medication{}, medication.ErrNameRequired
	}

	return uc.repo.Insert(ctx, repository.InsertOptions{
		UserID:       sc.UserID,
		Name:         strings.TrimSpace(input.Name),
		Dosage:       input.Dosage,
		Frequency:    input.Frequency,
		Times:        input.Times,
		Instructions: input.Instructions,
	})
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, id string, input medication.UpdateInput) (model.Medication, error) {
	if strings.TrimSpace(input.Name) == "" {
		return model.Medication{}, medication.ErrNameRequired
	}

	med, err := uc.repo.Update(ctx, repository.UpdateOptions{
		UserID:       sc.UserID,
		ID:           id,
		Name:         strings.TrimSpace(input.Name),
		Dosage:       input.Dosage,
		Frequency:    input.Frequency,
		Times:        input.Times,
		Instructions: input.Instructions,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return model.Medication{}, medication.ErrNotFound
	}
	return med, err
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	err := uc.repo.Delete(ctx, sc.UserID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return medication.ErrNotFound
	}
	return err
}
