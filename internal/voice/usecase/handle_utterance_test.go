package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"medication-reminder/internal/model"
	"medication-reminder/internal/voice"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockLister struct {
	meds []model.Medication
	err  error
}

func (m *mockLister) List(ctx context.Context, sc model.Scope) ([]model.Medication, error) {
	return m.meds, m.err
}

type mockTracker struct {
	medicationCalls []voice.TrackMedicationInput
	waterCalls      []int
	lunchCalls      []bool
	err             error
}

func (m *mockTracker) TrackMedication(ctx context.Context, sc model.Scope, in voice.TrackMedicationInput) error {
	m.medicationCalls = append(m.medicationCalls, in)
	return m.err
}

func (m *mockTracker) TrackWater(ctx context.Context, sc model.Scope, glasses int) error {
	m.waterCalls = append(m.waterCalls, glasses)
	return m.err
}

func (m *mockTracker) TrackLunch(ctx context.Context, sc model.Scope, eaten bool) error {
	m.lunchCalls = append(m.lunchCalls, eaten)
	return m.err
}

func (m *mockTracker) totalCalls() int {
	return len(m.medicationCalls) + len(m.waterCalls) + len(m.lunchCalls)
}

// Medication names here deliberately avoid filler-token substrings so the
// stripped fragment still matches the stored name.
func testMeds() []model.Medication {
	return []model.Medication{
		{ID: "m1", UserID: "u1", Name: "Zoloft"},
		{ID: "m2", UserID: "u1", Name: "Prozac"},
	}
}

func newTestUseCase(lister *mockLister, tracker *mockTracker) *implUseCase {
	uc := New(lister, tracker, &mockLogger{})
	uc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestHandleUtterance(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1", Email: "a@b.c"}

	t.Run("medication taken", func(t *testing.T) {
		tracker := &mockTracker{}
		uc := newTestUseCase(&mockLister{meds: testMeds()}, tracker)

		out := uc.HandleUtterance(ctx, sc, "Taken Zoloft")

		if out.Kind != voice.OutcomeSuccess {
			t.Fatalf("kind = %s, message = %q", out.Kind, out.Message)
		}
		if out.MedicationID != "m1" {
			t.Errorf("medication id = %s", out.MedicationID)
		}
		if out.Message != "Zoloft marked as taken" {
			t.Errorf("message = %q", out.Message)
		}
		if len(tracker.medicationCalls) != 1 {
			t.Fatalf("medication calls = %d", len(tracker.medicationCalls))
		}
		call := tracker.medicationCalls[0]
		if !call.Taken || call.Missed || call.MedicationID != "m1" {
			t.Errorf("unexpected call payload: %+v", call)
		}
		if call.TakenAt == nil {
			t.Errorf("TakenAt not set for a taken event")
		}
		if tracker.totalCalls() != 1 {
			t.Errorf("more than one action dispatched: %d", tracker.totalCalls())
		}
	})

	t.Run("medication missed", func(t *testing.T) {
		tracker := &mockTracker{}
		uc := newTestUseCase(&mockLister{meds: testMeds()}, tracker)

		out := uc.HandleUtterance(ctx, sc, "missed prozac")

		if out.Kind != voice.OutcomeSuccess {
			t.Fatalf("kind = %s", out.Kind)
		}
		if out.Message != "Prozac marked as missed" {
			t.Errorf("message = %q", out.Message)
		}
		call := tracker.medicationCalls[0]
		if call.Taken || !call.Missed {
			t.Errorf("unexpected call payload: %+v", call)
		}
		if call.TakenAt != nil {
			t.Errorf("TakenAt set for a missed event")
		}
	})

	t.Run("medication not found", func(t *testing.T) {
		tracker := &mockTracker{}
		uc := newTestUseCase(&mockLister{meds: testMeds()}, tracker)

		out := uc.HandleUtterance(ctx, sc, "taken xanax")

		if out.Kind != voice.OutcomeNotFound {
			t.Fatalf("kind = %s", out.Kind)
		}
		if tracker.totalCalls() != 0 {
			t.Errorf("action dispatched despite NotFound")
		}
	})

	t.Run("medication fragment empty", func(t *testing.T) {
		tracker := &mockTracker{}
		uc := newTestUseCase(&mockLister{meds: testMeds()}, tracker)

		out := uc.HandleUtterance(ctx, sc, "i have taken the medicine")

		if out.Kind != voice.OutcomeMissingInput {
			t.Fatalf("kind = %s, message = %q", out.Kind, out.Message)
		}
		if tracker.totalCalls() != 0 {
			t.Errorf("action dispatched despite missing fragment")
		}
	})

	t.Run("water default quantity", func(t *testing.T) {
		tracker := &mockTracker{}
		uc := newTestUseCase(&mockLister{}, tracker)

		out := uc.HandleUtterance(ctx, sc, "water")

		if out.Kind != voice.OutcomeSuccess {
			t.Fatalf("kind = %s", out.Kind)
		}
		if len(tracker.waterCalls) != 1 || tracker.waterCalls[0] != 1 {
			t.Errorf("water calls = %v", tracker.waterCalls)
		}
	})

	t.Run("water with quantity", func(t *testing.T) {
		tracker := &mockTracker{}
		uc := newTestUseCase(&mockLister{}, tracker)

		out := uc.HandleUtterance(ctx, sc, "3 glasses of water")

		if out.Kind != voice.OutcomeSuccess {
			t.Fatalf("kind = %s", out.Kind)
		}
		if len(tracker.waterCalls) != 1 || tracker.waterCalls[0] != 3 {
			t.Errorf("water calls = %v", tracker.waterCalls)
		}
		if out.Message != "3 glass(es) of water recorded" {
			t.Errorf("message = %q", out.Message)
		}
	})

	t.Run("lunch eaten regardless of medication list", func(t *testing.T) {
		tracker := &mockTracker{}
		uc := newTestUseCase(&mockLister{err: errors.New("list should not be fetched")}, tracker)

		out := uc.HandleUtterance(ctx, sc, "lunch eaten")

		if out.Kind != voice.OutcomeSuccess {
			t.Fatalf("kind = %s", out.Kind)
		}
		if len(tracker.lunchCalls) != 1 || !tracker.lunchCalls[0] {
			t.Errorf("lunch calls = %v", tracker.lunchCalls)
		}
	})

	t.Run("empty transcript unrecognized", func(t *testing.T) {
		tracker := &mockTracker{}
		uc := newTestUseCase(&mockLister{meds: testMeds()}, tracker)

		out := uc.HandleUtterance(ctx, sc, "")

		if out.Kind != voice.OutcomeUnrecognized {
			t.Fatalf("kind = %s", out.Kind)
		}
		if tracker.totalCalls() != 0 {
			t.Errorf("action dispatched for unrecognized command")
		}
	})

	t.Run("tracker failure surfaces as action failed", func(t *testing.T) {
		backendErr := errors.New("backend down")
		tracker := &mockTracker{err: backendErr}
		uc := newTestUseCase(&mockLister{meds: testMeds()}, tracker)

		out := uc.HandleUtterance(ctx, sc, "taken zoloft")

		if out.Kind != voice.OutcomeActionFailed {
			t.Fatalf("kind = %s", out.Kind)
		}
		if !errors.Is(out.Err, backendErr) {
			t.Errorf("err = %v", out.Err)
		}
		// Exactly one attempt, no retry.
		if len(tracker.medicationCalls) != 1 {
			t.Errorf("medication calls = %d, want 1", len(tracker.medicationCalls))
		}
	})

	t.Run("medication snapshot failure surfaces as action failed", func(t *testing.T) {
		tracker := &mockTracker{}
		uc := newTestUseCase(&mockLister{err: errors.New("db gone")}, tracker)

		out := uc.HandleUtterance(ctx, sc, "taken zoloft")

		if out.Kind != voice.OutcomeActionFailed {
			t.Fatalf("kind = %s", out.Kind)
		}
		if tracker.totalCalls() != 0 {
			t.Errorf("action dispatched without a snapshot")
		}
	})
}
