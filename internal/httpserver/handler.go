package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// EnvironmentProduction is the environment name that enables secure cookies.
const EnvironmentProduction = "production"

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.Recovery(), srv.mw.RequestID())

	ctx := context.Background()
	if srv.environment == EnvironmentProduction {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
// Every API route is bound to a browser session.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1", srv.mw.Session())

	setups := []func(context.Context, *gin.RouterGroup) error{
		srv.setupAccountDomain,
		srv.setupChatDomain,
		srv.setupBrowserDomain,
		srv.setupDiagnosticsDomain,
	}
	for _, setup := range setups {
		if err := setup(ctx, api); err != nil {
			return err
		}
	}

	return nil
}
