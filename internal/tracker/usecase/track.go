package usecase

import (
	"context"

	"medication-reminder/internal/model"
	"medication-reminder/internal/tracker"
	"medication-reminder/internal/tracker/repository"
)

func (uc *implUseCase) TrackMedication(ctx context.Context, sc model.Scope, input tracker.TrackMedicationInput) (model.MedicationEvent, error) {
	if input.Taken == input.Missed {
		return model.MedicationEvent{}, tracker.ErrInvalidEvent
	}

	med, err := uc.meds.Detail(ctx, sc, input.MedicationID)
	if err != nil {
		uc.l.Warnf(ctx, "tracker usecase: medication %s lookup: %v", input.MedicationID, err)
		return model.MedicationEvent{}, tracker.ErrMedicationNotFound
	}

	ev, err := uc.repo.InsertMedicationEvent(ctx, repository.InsertMedicationEventOptions{
		UserID:         sc.UserID,
		Date:           uc.today(),
		MedicationID:   med.ID,
		MedicationName: med.Name,
		ScheduledTime:  input.ScheduledTime,
		Taken:          input.Taken,
		TakenAt:        input.TakenAt,
		Missed:         input.Missed,
	})
	if err != nil {
		return model.MedicationEvent{}, err
	}
	return ev, nil
}

// TrackWater sets the day's glass count. Zero is valid (clearing the day);
// only negative counts are rejected.
func (uc *implUseCase) TrackWater(ctx context.Context, sc model.Scope, glasses int) (model.WaterIntake, error) {
	if glasses < 0 {
		return model.WaterIntake{}, tracker.ErrInvalidGlasses
	}
	return uc.repo.SetWater(ctx, repository.SetWaterOptions{
		UserID:  sc.UserID,
		Date:    uc.today(),
		Glasses: glasses,
	})
}

func (uc *implUseCase) TrackLunch(ctx context.Context, sc model.Scope, eaten bool) (model.LunchEntry, error) {
	at := uc.now()
	return uc.repo.SetLunch(ctx, repository.SetLunchOptions{
		UserID: sc.UserID,
		Date:   uc.today(),
		Eaten:  eaten,
		Time:   &at,
	})
}
