package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github-agent/internal/account"
	"github-agent/internal/browser"
	"github-agent/internal/chat"
	"github-agent/internal/diagnostics"
	"github-agent/internal/middleware"
	"github-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	chatUC        chat.UseCase
	accountUC     account.UseCase
	browserUC     browser.UseCase
	diagnosticsUC diagnostics.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Domains
	ChatUseCase        chat.UseCase
	AccountUseCase     account.UseCase
	BrowserUseCase     browser.UseCase
	DiagnosticsUseCase diagnostics.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		mw:            cfg.Middleware,
		chatUC:        cfg.ChatUseCase,
		accountUC:     cfg.AccountUseCase,
		browserUC:     cfg.BrowserUseCase,
		diagnosticsUC: cfg.DiagnosticsUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil || srv.accountUC == nil || srv.browserUC == nil || srv.diagnosticsUC == nil {
		return errors.New("all domain use cases are required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
