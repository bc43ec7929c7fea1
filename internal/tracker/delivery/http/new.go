package http

import (
	"medication-reminder/internal/tracker"
	"medication-reminder/pkg/log"
)

type handler struct {
	l  log.Logger
	uc tracker.UseCase
}

// New creates the tracker HTTP handler.
func New(l log.Logger, uc tracker.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
