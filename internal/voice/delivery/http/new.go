package http

import (
	"sync"

	"medication-reminder/internal/voice"
	"medication-reminder/pkg/log"
)

type handler struct {
	l  log.Logger
	uc voice.UseCase

	capCheck  voice.CapabilityCheck
	newEngine func() voice.Engine

	// One capture session per user, created lazily on first use and owned
	// by this handler for the lifetime of the server. All per-attempt state,
	// including the active generation, lives inside the session itself.
	mu       sync.Mutex
	sessions map[string]*voice.CaptureSession
}

// New creates the voice HTTP handler.
func New(l log.Logger, uc voice.UseCase, capCheck voice.CapabilityCheck, newEngine func() voice.Engine) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		capCheck:  capCheck,
		newEngine: newEngine,
		sessions:  make(map[string]*voice.CaptureSession),
	}
}

func (h *handler) sessionFor(userID string) *voice.CaptureSession {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[userID]
	if !ok {
		s = voice.NewCaptureSession(h.capCheck, h.newEngine())
		h.sessions[userID] = s
	}
	return s
}
