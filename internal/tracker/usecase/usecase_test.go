package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"medication-reminder/internal/model"
	"medication-reminder/internal/tracker"
	"medication-reminder/internal/tracker/repository"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockRepo struct {
	insertedEvents []repository.InsertMedicationEventOptions
	insertErr      error

	events  []model.MedicationEvent
	listErr error

	waterSets []repository.SetWaterOptions
	waterErr  error
	water     model.WaterIntake
	getWater  error

	lunchSets []repository.SetLunchOptions
	lunch     model.LunchEntry
	getLunch  error
}

func (m *mockRepo) InsertMedicationEvent(ctx context.Context, opt repository.InsertMedicationEventOptions) (model.MedicationEvent, error) {
	m.insertedEvents = append(m.insertedEvents, opt)
	if m.insertErr != nil {
		return model.MedicationEvent{}, m.insertErr
	}
	return model.MedicationEvent{
		ID:             "ev-1",
		UserID:         opt.UserID,
		Date:           opt.Date,
		MedicationID:   opt.MedicationID,
		MedicationName: opt.MedicationName,
		ScheduledTime:  opt.ScheduledTime,
		Taken:          opt.Taken,
		TakenAt:        opt.TakenAt,
		Missed:         opt.Missed,
	}, nil
}

func (m *mockRepo) ListMedicationEvents(ctx context.Context, opt repository.ListMedicationEventsOptions) ([]model.MedicationEvent, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

func (m *mockRepo) SetWater(ctx context.Context, opt repository.SetWaterOptions) (model.WaterIntake, error) {
	m.waterSets = append(m.waterSets, opt)
	if m.waterErr != nil {
		return model.WaterIntake{}, m.waterErr
	}
	return model.WaterIntake{UserID: opt.UserID, Date: opt.Date, Glasses: opt.Glasses}, nil
}

func (m *mockRepo) GetWater(ctx context.Context, userID, date string) (model.WaterIntake, error) {
	if m.getWater != nil {
		return model.WaterIntake{}, m.getWater
	}
	return m.water, nil
}

func (m *mockRepo) SetLunch(ctx context.Context, opt repository.SetLunchOptions) (model.LunchEntry, error) {
	m.lunchSets = append(m.lunchSets, opt)
	return model.LunchEntry{UserID: opt.UserID, Date: opt.Date, Eaten: opt.Eaten, Time: opt.Time}, nil
}

func (m *mockRepo) GetLunch(ctx context.Context, userID, date string) (model.LunchEntry, error) {
	if m.getLunch != nil {
		return model.LunchEntry{}, m.getLunch
	}
	return m.lunch, nil
}

type mockMeds struct {
	meds    []model.Medication
	listErr error
}

func (m *mockMeds) List(ctx context.Context, sc model.Scope) ([]model.Medication, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.meds, nil
}

func (m *mockMeds) Detail(ctx context.Context, sc model.Scope, id string) (model.Medication, error) {
	for _, med := range m.meds {
		if med.ID == id {
			return med, nil
		}
	}
	return model.Medication{}, errors.New("no such medication")
}

var testScope = model.Scope{UserID: "u1", Email: "u1@example.com"}

func newTestUseCase(repo *mockRepo, meds *mockMeds) *implUseCase {
	uc := New(mockLogger{}, repo, meds)
	uc.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}
	return uc
}

func TestTrackMedication(t *testing.T) {
	meds := &mockMeds{meds: []model.Medication{
		{ID: "m1", UserID: "u1", Name: "Zoloft", Times: []string{"08:00"}},
	}}

	t.Run("taken denormalizes name and date", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUseCase(repo, meds)

		at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
		ev, err := uc.TrackMedication(context.Background(), testScope, tracker.TrackMedicationInput{
			MedicationID: "m1",
			Taken:        true,
			TakenAt:      &at,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.MedicationName != "Zoloft" {
			t.Errorf("name = %q", ev.MedicationName)
		}
		if ev.Date != "2026-03-14" {
			t.Errorf("date = %q", ev.Date)
		}
		if len(repo.insertedEvents) != 1 {
			t.Fatalf("inserts = %d", len(repo.insertedEvents))
		}
	})

	t.Run("unknown medication", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUseCase(repo, meds)

		_, err := uc.TrackMedication(context.Background(), testScope, tracker.TrackMedicationInput{
			MedicationID: "nope",
			Taken:        true,
		})
		if !errors.Is(err, tracker.ErrMedicationNotFound) {
			t.Fatalf("err = %v", err)
		}
		if len(repo.insertedEvents) != 0 {
			t.Errorf("inserts = %d", len(repo.insertedEvents))
		}
	})

	t.Run("taken and missed both set", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, meds)
		_, err := uc.TrackMedication(context.Background(), testScope, tracker.TrackMedicationInput{
			MedicationID: "m1",
			Taken:        true,
			Missed:       true,
		})
		if !errors.Is(err, tracker.ErrInvalidEvent) {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("neither taken nor missed", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, meds)
		_, err := uc.TrackMedication(context.Background(), testScope, tracker.TrackMedicationInput{
			MedicationID: "m1",
		})
		if !errors.Is(err, tracker.ErrInvalidEvent) {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestTrackWater(t *testing.T) {
	t.Run("sets today's count", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUseCase(repo, &mockMeds{})

		w, err := uc.TrackWater(context.Background(), testScope, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Glasses != 3 {
			t.Errorf("glasses = %d", w.Glasses)
		}
		if len(repo.waterSets) != 1 || repo.waterSets[0].Date != "2026-03-14" {
			t.Errorf("sets = %+v", repo.waterSets)
		}
	})

	t.Run("saving again replaces rather than accumulates", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUseCase(repo, &mockMeds{})

		if _, err := uc.TrackWater(context.Background(), testScope, 3); err != nil {
			t.Fatalf("first save: %v", err)
		}
		w, err := uc.TrackWater(context.Background(), testScope, 4)
		if err != nil {
			t.Fatalf("second save: %v", err)
		}
		if w.Glasses != 4 {
			t.Errorf("glasses = %d", w.Glasses)
		}
		if len(repo.waterSets) != 2 || repo.waterSets[1].Glasses != 4 {
			t.Errorf("sets = %+v", repo.waterSets)
		}
	})

	t.Run("zero clears the day", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUseCase(repo, &mockMeds{})

		w, err := uc.TrackWater(context.Background(), testScope, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Glasses != 0 {
			t.Errorf("glasses = %d", w.Glasses)
		}
	})

	t.Run("rejects negative", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, &mockMeds{})
		if _, err := uc.TrackWater(context.Background(), testScope, -1); !errors.Is(err, tracker.ErrInvalidGlasses) {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestTrackLunch(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo, &mockMeds{})

	e, err := uc.TrackLunch(context.Background(), testScope, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.Eaten || e.Time == nil {
		t.Errorf("entry = %+v", e)
	}
	if len(repo.lunchSets) != 1 {
		t.Fatalf("sets = %d", len(repo.lunchSets))
	}
}

func TestToday(t *testing.T) {
	t.Run("zero values when nothing tracked", func(t *testing.T) {
		repo := &mockRepo{getWater: repository.ErrNotFound, getLunch: repository.ErrNotFound}
		uc := newTestUseCase(repo, &mockMeds{})

		out, err := uc.Today(context.Background(), testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Date != "2026-03-14" {
			t.Errorf("date = %q", out.Date)
		}
		if out.Water.Glasses != 0 || out.Lunch.Eaten {
			t.Errorf("water = %+v, lunch = %+v", out.Water, out.Lunch)
		}
	})

	t.Run("propagates event list failure", func(t *testing.T) {
		repo := &mockRepo{listErr: errors.New("db down")}
		uc := newTestUseCase(repo, &mockMeds{})
		if _, err := uc.Today(context.Background(), testScope); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestReminders(t *testing.T) {
	meds := &mockMeds{meds: []model.Medication{
		{ID: "m1", UserID: "u1", Name: "Zoloft", Dosage: "50mg", Times: []string{"08:00", "20:00"}},
		{ID: "m2", UserID: "u1", Name: "Prozac", Dosage: "20mg", Times: []string{"12:00"}},
	}}

	t.Run("pending without events", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, meds)
		rs, err := uc.Reminders(context.Background(), testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rs) != 3 {
			t.Fatalf("reminders = %d", len(rs))
		}
		for _, r := range rs {
			if r.Status != tracker.ReminderPending {
				t.Errorf("%s %s status = %s", r.MedicationName, r.ScheduledTime, r.Status)
			}
		}
	})

	t.Run("slot event resolves its slot", func(t *testing.T) {
		repo := &mockRepo{events: []model.MedicationEvent{
			{MedicationID: "m1", ScheduledTime: "20:00", Taken: true},
		}}
		uc := newTestUseCase(repo, meds)
		rs, err := uc.Reminders(context.Background(), testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rs[0].Status != tracker.ReminderPending || rs[1].Status != tracker.ReminderTaken {
			t.Errorf("statuses = %s, %s", rs[0].Status, rs[1].Status)
		}
	})

	t.Run("slotless event resolves first pending slot", func(t *testing.T) {
		repo := &mockRepo{events: []model.MedicationEvent{
			{MedicationID: "m1", Missed: true},
		}}
		uc := newTestUseCase(repo, meds)
		rs, err := uc.Reminders(context.Background(), testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rs[0].Status != tracker.ReminderMissed {
			t.Errorf("first slot = %s", rs[0].Status)
		}
		if rs[1].Status != tracker.ReminderPending {
			t.Errorf("second slot = %s", rs[1].Status)
		}
	})

	t.Run("propagates medication list failure", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, &mockMeds{listErr: errors.New("db down")})
		if _, err := uc.Reminders(context.Background(), testScope); err == nil {
			t.Fatal("expected error")
		}
	})
}
