package http

import (
	"github.com/gin-gonic/gin"

	"github-agent/internal/diagnostics"
	pkgLog "github-agent/pkg/log"
)

// Handler is the public interface for the diagnostics HTTP delivery layer.
type Handler interface {
	Run(c *gin.Context)
	Status(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc diagnostics.UseCase
}

// New creates a new HTTP handler for diagnostics.
func New(l pkgLog.Logger, uc diagnostics.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
