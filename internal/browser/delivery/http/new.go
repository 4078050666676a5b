package http

import (
	"github.com/gin-gonic/gin"

	"github-agent/internal/browser"
	pkgLog "github-agent/pkg/log"
)

// Handler is the public interface for the repository browser HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc browser.UseCase
}

// New creates a new HTTP handler for the repository browser.
func New(l pkgLog.Logger, uc browser.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
