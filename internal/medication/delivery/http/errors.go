package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"medication-reminder/internal/medication"
	"medication-reminder/pkg/response"
)

// mapError translates domain errors to HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, medication.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, medication.ErrNameRequired):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "medication http: %v", err)
		response.InternalError(c, err)
	}
}
