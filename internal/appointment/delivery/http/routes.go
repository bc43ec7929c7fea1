package http

import (
	"github.com/gin-gonic/gin"

	"medication-reminder/internal/middleware"
)

// RegisterRoutes maps the appointment endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", mw.Auth(), h.List)
	rg.POST("", mw.Auth(), h.Create)
	rg.PUT("/:id/status", mw.Auth(), h.UpdateStatus)
	rg.DELETE("/:id", mw.Auth(), h.Delete)
}
