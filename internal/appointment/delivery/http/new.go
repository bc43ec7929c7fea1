package http

import (
	"medication-reminder/internal/appointment"
	"medication-reminder/pkg/log"
)

type handler struct {
	l  log.Logger
	uc appointment.UseCase
}

// New creates the appointment HTTP handler.
func New(l log.Logger, uc appointment.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
