package http

import (
	"github.com/gin-gonic/gin"

	"github-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/token", mw.RateLimit(), h.Login)
		auth.DELETE("/token", h.Logout)
		auth.GET("/me", h.Me)
		auth.GET("/token-url", h.TokenURL)
	}
}
