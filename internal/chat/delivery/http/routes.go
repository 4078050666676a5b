package http

import (
	"github.com/gin-gonic/gin"

	"github-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Chat routes are bound to the browser session and rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	c := rg.Group("/chat", mw.RateLimit())
	{
		c.POST("", h.Send)
		c.GET("/history", h.History)
		c.DELETE("/history", h.ClearHistory)
		c.GET("/quick-actions", h.QuickActions)
		c.POST("/quick-actions/run", h.RunQuickAction)
	}
}
