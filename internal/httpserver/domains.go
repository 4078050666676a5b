package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	accountHTTP "github-agent/internal/account/delivery/http"
	browserHTTP "github-agent/internal/browser/delivery/http"
	chatHTTP "github-agent/internal/chat/delivery/http"
	diagnosticsHTTP "github-agent/internal/diagnostics/delivery/http"
)

// Pattern for a new domain:
//  1. Build the UseCase in cmd/api and pass it through Config.
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, srv.mw)

// setupAccountDomain registers /api/v1/auth.
func (srv HTTPServer) setupAccountDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := accountHTTP.New(srv.l, srv.accountUC)
	accountHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Account domain registered")
	return nil
}

// setupChatDomain registers /api/v1/chat.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}

// setupBrowserDomain registers /api/v1/repos.
func (srv HTTPServer) setupBrowserDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := browserHTTP.New(srv.l, srv.browserUC)
	browserHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Repository browser registered")
	return nil
}

// setupDiagnosticsDomain registers /api/v1/diagnostics and /api/v1/status.
func (srv HTTPServer) setupDiagnosticsDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := diagnosticsHTTP.New(srv.l, srv.diagnosticsUC)
	diagnosticsHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Diagnostics domain registered")
	return nil
}
