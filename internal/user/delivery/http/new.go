package http

import (
	"medication-reminder/internal/user"
	"medication-reminder/pkg/log"
)

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates the user HTTP handler.
func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
