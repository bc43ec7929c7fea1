package http

import (
	"github.com/gin-gonic/gin"

	"medication-reminder/internal/middleware"
)

// RegisterRoutes maps the voice endpoints. The command route is rate limited
// per user on top of auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/command", mw.Auth(), mw.VoiceRateLimit(), h.Command)

	capture := rg.Group("/capture")
	{
		capture.GET("", mw.Auth(), h.Capture)
		capture.POST("/start", mw.Auth(), h.StartCapture)
		capture.POST("/result", mw.Auth(), h.CaptureResult)
		capture.POST("/error", mw.Auth(), h.CaptureError)
		capture.POST("/cancel", mw.Auth(), h.CancelCapture)
		capture.POST("/reset", mw.Auth(), h.ResetCapture)
	}
}
