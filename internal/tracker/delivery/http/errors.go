package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"medication-reminder/internal/tracker"
	"medication-reminder/pkg/response"
)

// mapError translates domain errors to HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tracker.ErrMedicationNotFound):
		response.NotFound(c, err)
	case errors.Is(err, tracker.ErrInvalidGlasses), errors.Is(err, tracker.ErrInvalidEvent):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "tracker http: %v", err)
		response.InternalError(c, err)
	}
}
