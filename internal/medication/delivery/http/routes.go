package http

import (
	"github.com/gin-gonic/gin"

	"medication-reminder/internal/middleware"
)

// RegisterRoutes maps the medication endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", mw.Auth(), h.List)
	rg.POST("", mw.Auth(), h.Create)
	rg.GET("/:id", mw.Auth(), h.Detail)
	rg.PUT("/:id", mw.Auth(), h.Update)
	rg.DELETE("/:id", mw.Auth(), h.Delete)
}
