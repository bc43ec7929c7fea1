package http

import (
	"github.com/gin-gonic/gin"

	"medication-reminder/internal/middleware"
)

// RegisterRoutes maps the tracker endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/medication", mw.Auth(), h.TrackMedication)
	rg.POST("/water", mw.Auth(), h.TrackWater)
	rg.POST("/lunch", mw.Auth(), h.TrackLunch)
	rg.GET("/today", mw.Auth(), h.Today)
	rg.GET("/reminders", mw.Auth(), h.Reminders)
}
