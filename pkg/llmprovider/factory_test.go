package llmprovider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github-agent/config"
	"github-agent/pkg/llmprovider"
	"github-agent/pkg/log"
)

func TestInitializeProviders_SortsAndFilters(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "openai", Enabled: true, Priority: 2, BaseURL: "http://localhost:1234/v1", Model: "local"},
			{Name: "ollama", Enabled: true, Priority: 1, BaseURL: "http://localhost:11434", Model: "qwen2.5-coder:7b", Timeout: "120s"},
			{Name: "ollama", Enabled: false, Priority: 3, Model: "disabled"},
		},
		FallbackEnabled: true,
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("InitializeProviders() error = %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != llmprovider.ProviderOllama || providers[1].Name() != llmprovider.ProviderOpenAI {
		t.Errorf("unexpected order: %s, %s", providers[0].Name(), providers[1].Name())
	}
	if providers[0].Endpoint() != "http://localhost:11434" {
		t.Errorf("Endpoint = %q", providers[0].Endpoint())
	}
}

func TestInitializeProviders_UnknownSkipped(t *testing.T) {
	cfg := &config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: "mystery", Enabled: true, Priority: 1},
	}}
	if _, err := llmprovider.InitializeProviders(cfg); err == nil {
		t.Error("expected error when no provider can be created")
	}
}

// TestIntegration_OllamaThroughManager wires config, factory, and manager
// against a fake Ollama server.
func TestIntegration_OllamaThroughManager(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/chat/completions":
			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"chat-ok"}}]}`))
		case "/api/generate":
			w.Write([]byte(`{"response":"generate-ok","done":true}`))
		case "/api/tags":
			w.Write([]byte(`{"models":[{"name":"qwen2.5-coder:7b"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	providers, err := llmprovider.InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "ollama", Enabled: true, Priority: 1, BaseURL: ts.URL, Model: "qwen2.5-coder:7b"},
		},
	})
	if err != nil {
		t.Fatalf("InitializeProviders() error = %v", err)
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{FallbackEnabled: true}, log.NewNop())
	ctx := context.Background()

	chat, err := manager.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{{Role: "user", Content: "hi"}},
	})
	if err != nil || chat.Content != "chat-ok" {
		t.Errorf("GenerateContent() = %v, %v", chat, err)
	}

	gen, err := manager.Complete(ctx, &llmprovider.CompletionRequest{Prompt: "p"})
	if err != nil || gen.Content != "generate-ok" {
		t.Errorf("Complete() = %v, %v", gen, err)
	}

	p, err := manager.Available(ctx)
	if err != nil {
		t.Fatalf("Available() error = %v", err)
	}
	models, err := p.ListModels(ctx)
	if err != nil || len(models) != 1 {
		t.Errorf("ListModels() = %v, %v", models, err)
	}
}
