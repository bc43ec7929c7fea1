package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medication-reminder/internal/user"
	"medication-reminder/pkg/response"
)

// mapError translates domain errors to HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrEmailTaken):
		response.Conflict(c, err)
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.Resp{ErrorCode: 401, Message: err.Error()})
	case errors.Is(err, user.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, user.ErrWeakPassword), errors.Is(err, user.ErrEmailRequired):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "user http: %v", err)
		response.InternalError(c, err)
	}
}
