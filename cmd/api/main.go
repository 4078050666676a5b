package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github-agent/config"
	_ "github-agent/docs" // Swagger docs
	accountUC "github-agent/internal/account/usecase"
	"github-agent/internal/agent/dispatch"
	"github-agent/internal/agent/format"
	"github-agent/internal/agent/orchestrator"
	"github-agent/internal/agent/remote"
	browserUC "github-agent/internal/browser/usecase"
	chatUC "github-agent/internal/chat/usecase"
	"github-agent/internal/credential"
	diagnosticsUC "github-agent/internal/diagnostics/usecase"
	"github-agent/internal/httpserver"
	"github-agent/internal/intent"
	"github-agent/internal/middleware"
	"github-agent/internal/session"
	"github-agent/pkg/github"
	"github-agent/pkg/llmprovider"
	"github-agent/pkg/log"
)

// @title       GitHub Agent API
// @description Natural-language GitHub assistant backed by a local language model.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 0. Optional .env
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitHub Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Model providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No model provider available, running on keyword fallback: %v", err)
	}
	maxTotal, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		maxTotal = 0
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: maxTotal,
	}, logger)
	for _, p := range providers {
		logger.Infof(ctx, "Model provider %s: %s at %s", p.Name(), p.Model(), p.Endpoint())
	}

	// A typed nil manager must not reach the classifier or formatter.
	var classifierModel intent.Model
	var formatterModel format.Model
	if len(providers) > 0 {
		classifierModel = llm
		formatterModel = llm
	}

	// 4. Agent core
	classifier := intent.New(classifierModel, intent.Policy{
		HighConfidence: cfg.Agent.FallbackConfidenceHigh,
		LowConfidence:  cfg.Agent.FallbackConfidenceLow,
	}, logger)
	formatter := format.New(formatterModel, format.Config{
		MaxChars: cfg.Agent.FormatMaxChars,
		Language: cfg.Agent.ResponseLanguage,
	}, logger)
	pipeline := orchestrator.New(
		classifier,
		dispatch.New(logger),
		formatter,
		remote.NewFactory(remote.Config{
			BaseURL: cfg.GitHub.APIURL,
			Timeout: cfg.GitHub.Timeout,
			PerPage: cfg.GitHub.PerPage,
		}),
		orchestrator.Config{ConfidenceThreshold: &cfg.Agent.ConfidenceThreshold},
		logger,
	)

	// 5. Credential + sessions
	creds := credential.New(cfg.Credential.Path, logger)
	if seeded, sErr := creds.Seed(ctx, cfg.GitHub.Token); sErr != nil {
		logger.Warnf(ctx, "Could not seed credential from GITHUB_TOKEN: %v", sErr)
	} else if seeded {
		logger.Info(ctx, "Credential seeded from GITHUB_TOKEN")
	}
	transcripts := session.New(session.Config{
		TTL:         cfg.Session.TTL,
		MaxSessions: cfg.Session.MaxSessions,
		MaxHistory:  cfg.Session.MaxHistory,
	})

	newGitHub := func(token string) *github.Client {
		return github.New(token, cfg.GitHub.Timeout,
			github.WithBaseURL(cfg.GitHub.APIURL),
			github.WithPerPage(cfg.GitHub.PerPage),
		)
	}

	// 6. Use cases
	chat := chatUC.New(pipeline, creds, transcripts, logger)
	account := accountUC.New(creds, func(token string) accountUC.Profiles { return newGitHub(token) }, logger)
	browser := browserUC.New(creds, func(token string) browserUC.RepoLister { return newGitHub(token) }, logger)
	diagnostics := diagnosticsUC.New(llm, creds,
		func(token string) diagnosticsUC.GitHub { return newGitHub(token) },
		classifier, pipeline, logger)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.New(logger, middleware.Config{
			CookieSecure:   cfg.Environment.Name == httpserver.EnvironmentProduction,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		}),
		ChatUseCase:        chat,
		AccountUseCase:     account,
		BrowserUseCase:     browser,
		DiagnosticsUseCase: diagnostics,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
