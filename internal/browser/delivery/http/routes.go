package http

import (
	"github.com/gin-gonic/gin"

	"github-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/repos", mw.RateLimit(), h.List)
}
