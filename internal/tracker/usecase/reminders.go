package usecase

import (
	"context"

	"medication-reminder/internal/model"
	"medication-reminder/internal/tracker"
	"medication-reminder/internal/tracker/repository"
)

// Reminders expands each medication's schedule into per-slot reminders and
// overlays today's events. An event posted with an explicit scheduled time
// resolves that slot; an event without one (voice commands) resolves the
// first still-pending slot of its medication.
func (uc *implUseCase) Reminders(ctx context.Context, sc model.Scope) ([]tracker.Reminder, error) {
	meds, err := uc.meds.List(ctx, sc)
	if err != nil {
		return nil, err
	}

	events, err := uc.repo.ListMedicationEvents(ctx, repository.ListMedicationEventsOptions{
		UserID: sc.UserID,
		Date:   uc.today(),
	})
	if err != nil {
		return nil, err
	}

	// Events keyed by medID+"@"+time; slotless events queue per medication.
	bySlot := make(map[string]model.MedicationEvent)
	floating := make(map[string][]model.MedicationEvent)
	for _, ev := range events {
		if ev.ScheduledTime != "" {
			bySlot[ev.MedicationID+"@"+ev.ScheduledTime] = ev
			continue
		}
		floating[ev.MedicationID] = append(floating[ev.MedicationID], ev)
	}

	var reminders []tracker.Reminder
	for _, med := range meds {
		for _, slot := range med.Times {
			status := tracker.ReminderPending
			ev, ok := bySlot[med.ID+"@"+slot]
			if !ok {
				if q := floating[med.ID]; len(q) > 0 {
					ev, ok = q[0], true
					floating[med.ID] = q[1:]
				}
			}
			if ok {
				if ev.Taken {
					status = tracker.ReminderTaken
				} else if ev.Missed {
					status = tracker.ReminderMissed
				}
			}
			reminders = append(reminders, tracker.Reminder{
				MedicationID:   med.ID,
				MedicationName: med.Name,
				Dosage:         med.Dosage,
				ScheduledTime:  slot,
				Status:         status,
			})
		}
	}
	return reminders, nil
}
