package http

import (
	"github.com/gin-gonic/gin"

	"github-agent/internal/account"
	pkgLog "github-agent/pkg/log"
)

// Handler is the public interface for the account HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
	TokenURL(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc account.UseCase
}

// New creates a new HTTP handler for the account domain.
func New(l pkgLog.Logger, uc account.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
