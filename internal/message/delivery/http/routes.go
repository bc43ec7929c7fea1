package http

import (
	"github.com/gin-gonic/gin"

	"medication-reminder/internal/middleware"
)

// RegisterRoutes maps the message endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", mw.Auth(), h.List)
	rg.POST("", mw.Auth(), h.Send)
	rg.PUT("/:id/reply", mw.Auth(), h.Reply)
}
