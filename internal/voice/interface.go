package voice

import (
	"context"
	"time"

	"medication-reminder/internal/model"
)

// UseCase is the voice command pipeline exposed to the delivery layer.
// HandleUtterance runs normalize → interpret → resolve → dispatch for one
// transcript and always produces exactly one outcome; it never returns an
// error because every failure mode is itself an outcome.
type UseCase interface {
	HandleUtterance(ctx context.Context, sc model.Scope, transcript string) DispatchOutcome
}

// MedicationLister supplies the point-in-time medication snapshot the
// resolver matches against. The snapshot is read-only for the cycle.
type MedicationLister interface {
	List(ctx context.Context, sc model.Scope) ([]model.Medication, error)
}

// TrackMedicationInput mirrors the tracker's medication event payload.
type TrackMedicationInput struct {
	MedicationID string
	Taken        bool
	TakenAt      *time.Time
	Missed       bool
}

// TrackerClient is the closed set of backend actions the dispatcher may
// invoke. At most one call is made per utterance; errors are surfaced as
// ActionFailed outcomes and never retried.
type TrackerClient interface {
	TrackMedication(ctx context.Context, sc model.Scope, in TrackMedicationInput) error
	TrackWater(ctx context.Context, sc model.Scope, glasses int) error
	TrackLunch(ctx context.Context, sc model.Scope, eaten bool) error
}
