package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"medication-reminder/internal/message"
	"medication-reminder/pkg/response"
)

// mapError translates domain errors to HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, message.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, message.ErrBodyRequired):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "message http: %v", err)
		response.InternalError(c, err)
	}
}
