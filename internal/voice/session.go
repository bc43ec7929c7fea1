package voice

import (
	"context"
	"sync"
)

// CaptureState is the lifecycle state of one voice-capture attempt.
type CaptureState string

const (
	StateIdle      CaptureState = "IDLE"
	StateListening CaptureState = "LISTENING"
	StateCompleted CaptureState = "COMPLETED"
	StateFailed    CaptureState = "FAILED"
	StateCancelled CaptureState = "CANCELLED"
)

// Capability is the tri-state result of probing for speech capture support.
type Capability int

const (
	CapabilityUnknown Capability = iota
	CapabilityAvailable
	CapabilityUnavailable
)

// CapabilityCheck probes whether a speech engine can be used. Injected at
// construction so the session never does implicit global lookups.
type CapabilityCheck func() Capability

// Engine is the speech-to-text engine boundary. Start begins consuming
// audio; Stop releases the capture resource. Results and errors flow back
// through OnResult/OnError tagged with the generation issued by Start.
type Engine interface {
	Start(ctx context.Context) error
	Stop()
}

// NopEngine is an Engine with no backing hardware, used when transcripts
// arrive from an external client rather than a server-side engine.
type NopEngine struct{}

func (NopEngine) Start(ctx context.Context) error { return nil }
func (NopEngine) Stop()                           {}

// CaptureSession manages exactly one in-flight speech-capture attempt.
//
// State machine: Idle --Start--> Listening --OnResult--> Completed,
// --OnError--> Failed, --Cancel--> Cancelled; all terminal states
// --Reset--> Idle. Leaving Listening for any reason stops the engine
// exactly once. Every Start issues a new generation; events carrying a
// stale generation are discarded, which makes late engine callbacks after
// Cancel or Reset harmless.
type CaptureSession struct {
	mu sync.Mutex

	state      CaptureState
	transcript string
	errReason  string
	gen        uint64

	capCheck CapabilityCheck
	engine   Engine
}

// NewCaptureSession creates an idle session.
func NewCaptureSession(capCheck CapabilityCheck, engine Engine) *CaptureSession {
	return &CaptureSession{
		state:    StateIdle,
		capCheck: capCheck,
		engine:   engine,
	}
}

// Start begins a capture attempt and returns the generation token that
// tags this attempt's events.
//
// Start while already Listening is a no-op returning the active generation,
// so a double toggle never spawns a second concurrent attempt. Start without
// capture capability returns ErrCaptureUnavailable and leaves the state
// machine untouched. Start from a terminal state returns ErrNotIdle.
func (s *CaptureSession) Start(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.capCheck() != CapabilityAvailable {
		return 0, ErrCaptureUnavailable
	}

	switch s.state {
	case StateListening:
		return s.gen, nil
	case StateIdle:
		// proceed
	default:
		return 0, ErrNotIdle
	}

	s.gen++
	s.state = StateListening
	s.transcript = ""
	s.errReason = ""

	if err := s.engine.Start(ctx); err != nil {
		s.state = StateIdle
		return 0, err
	}
	return s.gen, nil
}

// OnResult records a final transcript for the given attempt. Events from a
// stale generation, or arriving outside Listening, are ignored.
func (s *CaptureSession) OnResult(gen uint64, transcript string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateListening || gen != s.gen {
		return
	}
	s.state = StateCompleted
	s.transcript = transcript
	s.engine.Stop()
}

// OnError records an engine-reported recognition failure for the given
// attempt. Stale events are ignored.
func (s *CaptureSession) OnError(gen uint64, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateListening || gen != s.gen {
		return
	}
	s.state = StateFailed
	s.errReason = reason
	s.engine.Stop()
}

// Cancel abandons an in-flight attempt. No-op outside Listening. Any event
// the abandoned attempt later delivers is discarded by the generation check.
func (s *CaptureSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateListening {
		return
	}
	s.state = StateCancelled
	s.engine.Stop()
}

// Reset returns the session to Idle so a fresh attempt can start. If called
// while Listening it also releases the engine, honoring the stop obligation.
func (s *CaptureSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateListening {
		s.engine.Stop()
	}
	s.state = StateIdle
	s.transcript = ""
	s.errReason = ""
}

// CurrentGen returns the generation of the most recent attempt. Callers that
// relay events on behalf of an engine read it under the session lock here
// rather than caching it across calls.
func (s *CaptureSession) CurrentGen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Snapshot returns the current state, transcript, and error reason.
func (s *CaptureSession) Snapshot() (CaptureState, string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.transcript, s.errReason
}
