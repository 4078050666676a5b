package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github-agent/internal/account"
	"github-agent/internal/browser"
	"github-agent/internal/chat"
	"github-agent/internal/diagnostics"
	"github-agent/internal/middleware"
	"github-agent/internal/session"
	pkgLog "github-agent/pkg/log"
)

type stubChat struct{}

func (stubChat) Send(context.Context, chat.SendInput) (chat.SendOutput, error) {
	return chat.SendOutput{}, nil
}
func (stubChat) History(context.Context, string) []session.Turn { return nil }
func (stubChat) ClearHistory(context.Context, string)           {}
func (stubChat) QuickActions(context.Context) []chat.QuickAction {
	return chat.DefaultQuickActions()
}
func (stubChat) RunQuickAction(context.Context, chat.RunQuickActionInput) (chat.SendOutput, error) {
	return chat.SendOutput{}, nil
}

type stubAccount struct{}

func (stubAccount) Login(context.Context, account.LoginInput) (account.LoginOutput, error) {
	return account.LoginOutput{}, nil
}
func (stubAccount) Logout(context.Context) error                 { return nil }
func (stubAccount) Me(context.Context) (account.MeOutput, error) { return account.MeOutput{}, nil }
func (stubAccount) TokenURL() string                             { return account.TokenURL }

type stubBrowser struct{}

func (stubBrowser) List(context.Context, browser.ListReposInput) (browser.ListReposOutput, error) {
	return browser.ListReposOutput{}, nil
}

type stubDiagnostics struct{}

func (stubDiagnostics) Run(context.Context) diagnostics.Report { return diagnostics.Report{} }
func (stubDiagnostics) Status(context.Context) diagnostics.StatusOutput {
	return diagnostics.StatusOutput{}
}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := pkgLog.NewNop()
	srv, err := New(l, Config{
		Port:               8080,
		Mode:               gin.TestMode,
		Environment:        "test",
		Middleware:         middleware.New(l, middleware.Config{RequestsPerMin: 6000}),
		ChatUseCase:        stubChat{},
		AccountUseCase:     stubAccount{},
		BrowserUseCase:     stubBrowser{},
		DiagnosticsUseCase: stubDiagnostics{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func TestNew_Validate(t *testing.T) {
	if _, err := New(pkgLog.NewNop(), Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Error("expected error for missing use cases")
	}
	if _, err := New(pkgLog.NewNop(), Config{Mode: gin.TestMode}); err == nil {
		t.Error("expected error for missing port")
	}
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodGet, "/ready"},
		{http.MethodGet, "/live"},
		{http.MethodGet, "/api/v1/auth/token-url"},
		{http.MethodGet, "/api/v1/chat/quick-actions"},
		{http.MethodGet, "/api/v1/chat/history"},
		{http.MethodGet, "/api/v1/repos"},
		{http.MethodGet, "/api/v1/status"},
		{http.MethodGet, "/api/v1/diagnostics"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != http.StatusOK {
				t.Errorf("%s %s = %d", tt.method, tt.path, w.Code)
			}
			if w.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("missing request id header")
			}
		})
	}
}

func TestAPIRoutesSetSessionCookie(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/chat/history", nil))

	if !strings.Contains(w.Header().Get("Set-Cookie"), middleware.SessionCookieName+"=") {
		t.Errorf("missing session cookie: %q", w.Header().Get("Set-Cookie"))
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if !strings.Contains(w.Body.String(), `"service":"github-agent"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
