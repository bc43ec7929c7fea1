package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"medication-reminder/internal/model"
	"medication-reminder/pkg/response"
)

const scopeContextKey = "auth.scope"

// Auth verifies the bearer token and stores the resulting Scope in the
// gin context for handlers to read via GetScope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeContextKey, model.Scope{
			UserID: payload.UserID,
			Email:  payload.Email,
			Name:   payload.Name,
		})
		c.Next()
	}
}

// GetScope returns the Scope stored by Auth. The bool is false on routes
// that were not protected by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeContextKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
