package usecase

import (
	"context"
	"fmt"

	"medication-reminder/internal/model"
	"medication-reminder/internal/voice"
)

const unrecognizedHint = `command not recognized; try: "taken [medicine name]", "missed [medicine name]", "water", or "lunch eaten"`

// HandleUtterance runs one full command cycle for a transcript. The stages
// are strictly sequential and at most one tracker action is invoked; a
// failed action is reported, never retried.
func (uc *implUseCase) HandleUtterance(ctx context.Context, sc model.Scope, transcript string) voice.DispatchOutcome {
	cmd := voice.Interpret(voice.Normalize(transcript))

	uc.l.Debugf(ctx, "voice: interpreted intent=%s entity=%q", cmd.Intent, cmd.RawEntityText)

	switch cmd.Intent {
	case voice.IntentMedicationTaken:
		return uc.dispatchMedication(ctx, sc, cmd, true)

	case voice.IntentMedicationMissed:
		return uc.dispatchMedication(ctx, sc, cmd, false)

	case voice.IntentWaterIntake:
		if err := uc.tracker.TrackWater(ctx, sc, cmd.Quantity); err != nil {
			uc.l.Errorf(ctx, "voice: TrackWater: %v", err)
			return actionFailed(err)
		}
		return voice.DispatchOutcome{
			Kind:    voice.OutcomeSuccess,
			Message: fmt.Sprintf("%d glass(es) of water recorded", cmd.Quantity),
		}

	case voice.IntentLunchEaten:
		if err := uc.tracker.TrackLunch(ctx, sc, true); err != nil {
			uc.l.Errorf(ctx, "voice: TrackLunch: %v", err)
			return actionFailed(err)
		}
		return voice.DispatchOutcome{
			Kind:    voice.OutcomeSuccess,
			Message: "lunch marked as eaten",
		}

	default:
		return voice.DispatchOutcome{
			Kind:    voice.OutcomeUnrecognized,
			Message: unrecognizedHint,
		}
	}
}

// dispatchMedication resolves the medication fragment and records a
// taken or missed event.
func (uc *implUseCase) dispatchMedication(ctx context.Context, sc model.Scope, cmd voice.ParsedCommand, taken bool) voice.DispatchOutcome {
	verb := "missed"
	if taken {
		verb = "took"
	}

	medications, err := uc.meds.List(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "voice: medication snapshot: %v", err)
		return actionFailed(err)
	}

	resolution, med := voice.Resolve(cmd.RawEntityText, medications)
	switch resolution {
	case voice.ResolutionEmptyFragment:
		return voice.DispatchOutcome{
			Kind:    voice.OutcomeMissingInput,
			Message: fmt.Sprintf("please specify which medication you %s", verb),
		}

	case voice.ResolutionNotFound:
		return voice.DispatchOutcome{
			Kind:    voice.OutcomeNotFound,
			Message: fmt.Sprintf("medication %q not found in your list", cmd.RawEntityText),
		}
	}

	in := voice.TrackMedicationInput{
		MedicationID: med.ID,
		Taken:        taken,
		Missed:       !taken,
	}
	if taken {
		now := uc.now()
		in.TakenAt = &now
	}

	if err := uc.tracker.TrackMedication(ctx, sc, in); err != nil {
		uc.l.Errorf(ctx, "voice: TrackMedication: %v", err)
		return actionFailed(err)
	}

	state := "taken"
	if !taken {
		state = "missed"
	}
	return voice.DispatchOutcome{
		Kind:         voice.OutcomeSuccess,
		Message:      fmt.Sprintf("%s marked as %s", med.Name, state),
		MedicationID: med.ID,
	}
}

func actionFailed(err error) voice.DispatchOutcome {
	return voice.DispatchOutcome{
		Kind:    voice.OutcomeActionFailed,
		Message: "could not record your command, please try again",
		Err:     err,
	}
}
