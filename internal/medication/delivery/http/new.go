package http

import (
	"medication-reminder/internal/medication"
	"medication-reminder/pkg/log"
)

type handler struct {
	l  log.Logger
	uc medication.UseCase
}

// New creates the medication HTTP handler.
func New(l log.Logger, uc medication.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
