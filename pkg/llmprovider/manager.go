package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github-agent/pkg/log"
)

// Manager orchestrates provider selection and fallback. It never retries a
// provider; a failed call moves on to the next one in priority order.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent runs a chat request against providers in priority order.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}
	return m.run(ctx, "chat", func(ctx context.Context, p Provider) (*Response, error) {
		return p.GenerateContent(ctx, req)
	})
}

// Complete runs a prompt completion against providers in priority order.
func (m *Manager) Complete(ctx context.Context, req *CompletionRequest) (*Response, error) {
	if req == nil || req.Prompt == "" {
		return nil, ErrInvalidRequest
	}
	return m.run(ctx, "generate", func(ctx context.Context, p Provider) (*Response, error) {
		return p.Complete(ctx, req)
	})
}

// Primary returns the highest priority provider, or nil.
func (m *Manager) Primary() Provider {
	if len(m.providers) == 0 {
		return nil
	}
	return m.providers[0]
}

// Providers returns the configured providers in priority order.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// Available returns the first provider that answers a ping.
func (m *Manager) Available(ctx context.Context) (Provider, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var lastErr error
	for _, p := range m.providers {
		if err := p.Ping(ctx); err != nil {
			lastErr = &ProviderError{Provider: p.Name(), Err: err}
			continue
		}
		return p, nil
	}
	return nil, lastErr
}

func (m *Manager) run(ctx context.Context, op string, call func(context.Context, Provider) (*Response, error)) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: global timeout exceeded after trying %d provider(s): %w",
					ErrProviderTimeout, len(m.providers), ctx.Err())
			}
			return nil, fmt.Errorf("request canceled after trying %d provider(s): %w", len(m.providers), ctx.Err())
		default:
		}

		start := time.Now()
		resp, err := call(ctx, provider)
		if err == nil {
			m.logSuccess(ctx, op, provider, resp, time.Since(start))
			return resp, nil
		}

		m.logFailure(ctx, op, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

func (m *Manager) logSuccess(ctx context.Context, op string, provider Provider, resp *Response, took time.Duration) {
	fields := []any{
		"op", op,
		"provider", provider.Name(),
		"model", provider.Model(),
		"duration", took.String(),
	}
	if resp.Usage != nil {
		fields = append(fields,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
		)
	}
	m.logger.Info(ctx, append([]any{"LLM call successful"}, fields...)...)
}

func (m *Manager) logFailure(ctx context.Context, op string, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM call failed",
		"op", op,
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
