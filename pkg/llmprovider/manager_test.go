package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	pingErr    error
	response   *Response
	callCount  int
	lastReq    *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Complete(ctx context.Context, req *CompletionRequest) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Ping(ctx context.Context) error {
	return m.pingErr
}

func (m *mockProvider) ListModels(ctx context.Context) ([]string, error) {
	return []string{m.model}, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

func (m *mockProvider) Endpoint() string {
	return "http://" + m.name
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func helloRequest() *Request {
	return &Request{
		SystemInstruction: "system",
		Messages:          []Message{{Role: "user", Content: "Hello"}},
		Temperature:       0.1,
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{
		name:  "primary",
		model: "primary-model",
		response: &Response{
			Content:      "Hello from primary provider",
			ProviderName: "primary",
			ModelName:    "primary-model",
			Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
		},
	}

	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{FallbackEnabled: true}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.Content != "Hello from primary provider" {
		t.Errorf("Unexpected content: %s", resp.Content)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if primary.lastReq.Temperature != 0.1 {
		t.Errorf("Expected temperature to be passed through, got: %v", primary.lastReq.Temperature)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_FallbackWithoutRetry(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "secondary-model",
		response: &Response{Content: "ok", ProviderName: "secondary"},
	}

	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}

	// A failed provider is never retried
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", shouldFail: true}

	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) || provErr.Provider != "secondary" {
		t.Errorf("Expected last ProviderError from secondary, got: %v", err)
	}
	if len(logger.warnMessages) != 2 {
		t.Errorf("Expected 2 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", response: &Response{}}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: false}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), helloRequest()); err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled, got nil")
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &Config{FallbackEnabled: true}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	primary := &mockProvider{name: "primary", response: &Response{}}
	manager := NewManager([]Provider{primary}, &Config{MaxTotalTimeout: time.Second}, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := manager.GenerateContent(ctx, helloRequest()); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
	if primary.callCount != 0 {
		t.Errorf("Expected no provider calls after cancellation, got: %d", primary.callCount)
	}
}

func TestComplete_Fallback(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", response: &Response{Content: "formatted"}}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true}, &mockLogger{})

	resp, err := manager.Complete(context.Background(), &CompletionRequest{Prompt: "p"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Content != "formatted" {
		t.Errorf("Unexpected content: %s", resp.Content)
	}
}

func TestAvailable(t *testing.T) {
	down := &mockProvider{name: "down", pingErr: errors.New("connection refused")}
	up := &mockProvider{name: "up"}

	manager := NewManager([]Provider{down, up}, nil, &mockLogger{})
	p, err := manager.Available(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if p.Name() != "up" {
		t.Errorf("Expected 'up', got: %s", p.Name())
	}

	manager = NewManager([]Provider{down}, nil, &mockLogger{})
	if _, err := manager.Available(context.Background()); err == nil {
		t.Error("Expected error when no provider answers")
	}
}
