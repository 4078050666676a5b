package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github-agent/internal/browser"
	"github-agent/internal/middleware"
	"github-agent/pkg/github"
	pkgLog "github-agent/pkg/log"
)

type mockUseCase struct {
	last browser.ListReposInput
	err  error
}

func (m *mockUseCase) List(ctx context.Context, input browser.ListReposInput) (browser.ListReposOutput, error) {
	m.last = input
	if m.err != nil {
		return browser.ListReposOutput{}, m.err
	}
	return browser.ListReposOutput{
		Repos: []github.Repository{{
			Name:      "vscode",
			FullName:  "microsoft/vscode",
			Stars:     10,
			UpdatedAt: time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC),
		}},
		Total: 1,
	}, nil
}

func setupRouter(uc browser.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(pkgLog.NewNop(), middleware.Config{RequestsPerMin: 6000})
	RegisterRoutes(r.Group("/api/v1"), New(pkgLog.NewNop(), uc), mw)
	return r
}

func TestList(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/repos?filter=vs&sort=Stars", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.last.Filter != "vs" || uc.last.Sort != browser.SortStars {
		t.Errorf("unexpected input: %+v", uc.last)
	}
	if !strings.Contains(w.Body.String(), `"full_name":"microsoft/vscode"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"updated_at":"2024-05-01T15:30:00Z"`) {
		t.Errorf("updated_at not formatted: %s", w.Body.String())
	}
}

func TestList_InvalidSort(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/repos?sort=size", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestList_RemoteFailure(t *testing.T) {
	r := setupRouter(&mockUseCase{err: browser.ErrRemote})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/repos", nil))

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}
