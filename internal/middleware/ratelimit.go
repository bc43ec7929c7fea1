package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"medication-reminder/pkg/response"
)

// VoiceRateLimit throttles voice commands per authenticated user.
// Must be registered after Auth.
func (m Middleware) VoiceRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.voiceLimitPerMin <= 0 {
			c.Next()
			return
		}

		sc, ok := GetScope(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		limiter, ok := m.limiters.Get(sc.UserID)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(m.voiceLimitPerMin)/60.0), m.voiceLimitPerMin)
			m.limiters.Add(sc.UserID, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware: voice rate limit hit for user %s", sc.UserID)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
