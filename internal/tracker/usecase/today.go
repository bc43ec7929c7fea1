package usecase

import (
	"context"
	"errors"

	"medication-reminder/internal/model"
	"medication-reminder/internal/tracker"
	"medication-reminder/internal/tracker/repository"
)

func (uc *implUseCase) Today(ctx context.Context, sc model.Scope) (tracker.TodayOutput, error) {
	date := uc.today()

	events, err := uc.repo.ListMedicationEvents(ctx, repository.ListMedicationEventsOptions{
		UserID: sc.UserID,
		Date:   date,
	})
	if err != nil {
		return tracker.TodayOutput{}, err
	}

	water, err := uc.repo.GetWater(ctx, sc.UserID, date)
	if errors.Is(err, repository.ErrNotFound) {
		water = model.WaterIntake{UserID: sc.UserID, Date: date}
	} else if err != nil {
		return tracker.TodayOutput{}, err
	}

	lunch, err := uc.repo.GetLunch(ctx, sc.UserID, date)
	if errors.Is(err, repository.ErrNotFound) {
		lunch = model.LunchEntry{UserID: sc.UserID, Date: date}
	} else if err != nil {
		return tracker.TodayOutput{}, err
	}

	return tracker.TodayOutput{
		Date:   date,
		Events: events,
		Water:  water,
		Lunch:  lunch,
	}, nil
}
