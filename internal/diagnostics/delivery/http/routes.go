package http

import (
	"github.com/gin-gonic/gin"

	"github-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Diagnostics call the model and GitHub, so both routes are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/diagnostics", mw.RateLimit(), h.Run)
	rg.GET("/status", mw.RateLimit(), h.Status)
}
