package http

import (
	"medication-reminder/internal/message"
	"medication-reminder/pkg/log"
)

type handler struct {
	l  log.Logger
	uc message.UseCase
}

// New creates the message HTTP handler.
func New(l log.Logger, uc message.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
