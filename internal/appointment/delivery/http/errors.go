package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"medication-reminder/internal/appointment"
	"medication-reminder/pkg/response"
)

// mapError translates domain errors to HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, appointment.ErrInvalidStatus),
		errors.Is(err, appointment.ErrDoctorRequired),
		errors.Is(err, appointment.ErrBadDateTime):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "appointment http: %v", err)
		response.InternalError(c, err)
	}
}
