package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github-agent/pkg/ollama"
	"github-agent/pkg/openaicompat"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest marks a nil or empty request, or one the server refused with 400.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrProviderTimeout marks a deadline hit by one provider or by the whole chain.
	ErrProviderTimeout = errors.New("provider timeout")
	// ErrProviderRateLimited marks a 429 from an OpenAI-compatible server.
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// normalizeError tags adapter failures with the sentinels above. The
// original error stays in the chain.
func normalizeError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openaicompat.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
		case http.StatusBadRequest:
			return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
	}

	if ollama.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	}
	return err
}

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
