package voice

import (
	"context"
	"errors"
	"testing"
)

type fakeEngine struct {
	starts   int
	stops    int
	startErr error
}

func (e *fakeEngine) Start(ctx context.Context) error {
	e.starts++
	return e.startErr
}

func (e *fakeEngine) Stop() { e.stops++ }

func available() Capability   { return CapabilityAvailable }
func unavailable() Capability { return CapabilityUnavailable }

func TestCaptureSessionLifecycle(t *testing.T) {
	t.Run("result completes the session", func(t *testing.T) {
		engine := &fakeEngine{}
		s := NewCaptureSession(available, engine)

		gen, err := s.Start(context.Background())
		if err != nil {
			t.Fatalf("Start: %v", err)
		}

		s.OnResult(gen, "taken aspirin")

		state, transcript, _ := s.Snapshot()
		if state != StateCompleted {
			t.Errorf("state = %s", state)
		}
		if transcript != "taken aspirin" {
			t.Errorf("transcript = %q", transcript)
		}
		if engine.stops != 1 {
			t.Errorf("engine stops = %d, want 1", engine.stops)
		}
	})

	t.Run("error fails the session and stops the engine", func(t *testing.T) {
		engine := &fakeEngine{}
		s := NewCaptureSession(available, engine)

		gen, _ := s.Start(context.Background())
		s.OnError(gen, "no-speech")

		state, _, reason := s.Snapshot()
		if state != StateFailed || reason != "no-speech" {
			t.Errorf("state = %s, reason = %q", state, reason)
		}
		if engine.stops != 1 {
			t.Errorf("engine stops = %d, want 1", engine.stops)
		}
	})

	t.Run("current gen tracks the active attempt", func(t *testing.T) {
		engine := &fakeEngine{}
		s := NewCaptureSession(available, engine)

		gen, _ := s.Start(context.Background())
		if s.CurrentGen() != gen {
			t.Errorf("CurrentGen = %d, want %d", s.CurrentGen(), gen)
		}

		s.Cancel()
		s.Reset()
		gen2, _ := s.Start(context.Background())
		if gen2 == gen || s.CurrentGen() != gen2 {
			t.Errorf("gen2 = %d, CurrentGen = %d, old gen = %d", gen2, s.CurrentGen(), gen)
		}
	})

	t.Run("cancel stops the engine", func(t *testing.T) {
		engine := &fakeEngine{}
		s := NewCaptureSession(available, engine)

		s.Start(context.Background())
		s.Cancel()

		state, _, _ := s.Snapshot()
		if state != StateCancelled {
			t.Errorf("state = %s", state)
		}
		if engine.stops != 1 {
			t.Errorf("engine stops = %d, want 1", engine.stops)
		}
	})

	t.Run("stale result after cancel is discarded", func(t *testing.T) {
		engine := &fakeEngine{}
		s := NewCaptureSession(available, engine)

		gen, _ := s.Start(context.Background())
		s.Cancel()

		// Late callback from the abandoned attempt.
		s.OnResult(gen, "too late")

		state, transcript, _ := s.Snapshot()
		if state != StateCancelled {
			t.Errorf("stale result applied: state = %s", state)
		}
		if transcript != "" {
			t.Errorf("stale transcript kept: %q", transcript)
		}
	})

	t.Run("stale result after reset and restart is discarded", func(t *testing.T) {
		engine := &fakeEngine{}
		s := NewCaptureSession(available, engine)

		oldGen, _ := s.Start(context.Background())
		s.Cancel()
		s.Reset()

		newGen, _ := s.Start(context.Background())
		if newGen == oldGen {
			t.Fatalf("generation not advanced across attempts")
		}

		s.OnResult(oldGen, "from previous attempt")

		state, _, _ := s.Snapshot()
		if state != StateListening {
			t.Errorf("stale result applied: state = %s", state)
		}
	})

	t.Run("start while listening is a no-op", func(t *testing.T) {
		engine := &fakeEngine{}
		s := NewCaptureSession(available, engine)

		gen1, _ := s.Start(context.Background())
		gen2, err := s.Start(context.Background())
		if err != nil {
			t.Fatalf("second Start errored: %v", err)
		}
		if gen1 != gen2 {
			t.Errorf("second Start spawned a new attempt: %d != %d", gen1, gen2)
		}
		if engine.starts != 1 {
			t.Errorf("engine starts = %d, want 1", engine.starts)
		}
	})

	t.Run("start without capability", func(t *testing.T) {
		engine := &fakeEngine{}
		s := NewCaptureSession(unavailable, engine)

		_, err := s.Start(context.Background())
		if !errors.Is(err, ErrCaptureUnavailable) {
			t.Fatalf("expected ErrCaptureUnavailable, got %v", err)
		}
		state, _, _ := s.Snapshot()
		if state != StateIdle {
			t.Errorf("state machine touched: %s", state)
		}
		if engine.starts != 0 {
			t.Errorf("engine started despite missing capability")
		}
	})

	t.Run("start from terminal state requires reset", func(t *testing.T) {
		engine := &fakeEngine{}
		s := NewCaptureSession(available, engine)

		gen, _ := s.Start(context.Background())
		s.OnResult(gen, "done")

		if _, err := s.Start(context.Background()); !errors.Is(err, ErrNotIdle) {
			t.Fatalf("expected ErrNotIdle, got %v", err)
		}

		s.Reset()
		if _, err := s.Start(context.Background()); err != nil {
			t.Errorf("Start after Reset: %v", err)
		}
	})

	t.Run("engine start failure returns to idle", func(t *testing.T) {
		engine := &fakeEngine{startErr: errors.New("device busy")}
		s := NewCaptureSession(available, engine)

		if _, err := s.Start(context.Background()); err == nil {
			t.Fatalf("expected engine error")
		}
		state, _, _ := s.Snapshot()
		if state != StateIdle {
			t.Errorf("state = %s, want IDLE", state)
		}
	})

	t.Run("reset while listening releases the engine", func(t *testing.T) {
		engine := &fakeEngine{}
		s := NewCaptureSession(available, engine)

		s.Start(context.Background())
		s.Reset()

		if engine.stops != 1 {
			t.Errorf("engine stops = %d, want 1", engine.stops)
		}
	})
}
