package http

import (
	"github.com/gin-gonic/gin"

	"github-agent/internal/chat"
	pkgLog "github-agent/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Send(c *gin.Context)
	History(c *gin.Context)
	ClearHistory(c *gin.Context)
	QuickActions(c *gin.Context)
	RunQuickAction(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l pkgLog.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
