package http

import (
	"github.com/gin-gonic/gin"

	"medication-reminder/internal/middleware"
)

// RegisterRoutes maps the auth and profile endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.GET("/profile", mw.Auth(), h.Profile)
	rg.PUT("/profile", mw.Auth(), h.UpdateProfile)
}
