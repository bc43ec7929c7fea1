package voice

import "errors"

var (
	// ErrCaptureUnavailable is returned by Start when no speech capture
	// capability exists. Non-retryable within the session.
	ErrCaptureUnavailable = errors.New("speech capture is not available")

	// ErrNotIdle is returned by Start from a terminal state; the caller
	// must Reset first.
	ErrNotIdle = errors.New("capture session must be reset before starting")
)
