package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github-agent/pkg/openaicompat"
)

func newClientImpl(cfg Config) (*clientImpl, error) {
	chat, err := openaicompat.New(openaicompat.Config{
		BaseURL:    cfg.BaseURL + pathOpenAI,
		Model:      cfg.Model,
		HTTPClient: cfg.HTTPClient,
	})
	if err != nil {
		return nil, err
	}

	return &clientImpl{
		baseURL:      cfg.BaseURL,
		model:        cfg.Model,
		probeTimeout: cfg.ProbeTimeout,
		httpClient:   cfg.HTTPClient,
		chat:         chat,
	}, nil
}

func (c *clientImpl) Model() string {
	return c.model
}

func (c *clientImpl) BaseURL() string {
	return c.baseURL
}

// Chat runs a chat completion. No max-token cap is sent.
func (c *clientImpl) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	msgs := make([]openaicompat.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, openaicompat.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := c.chat.ChatCompletion(ctx, &openaicompat.Request{
		Messages:    msgs,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, classify(err)
	}

	out := &ChatResponse{Content: resp.Content, Model: resp.Model}
	if resp.Usage != nil {
		out.InputTokens = resp.Usage.InputTokens
		out.OutputTokens = resp.Usage.OutputTokens
	}
	return out, nil
}

// Generate runs a non-streaming /api/generate call.
func (c *clientImpl) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	body, err := json.Marshal(generateWireRequest{
		Model:  c.model,
		Prompt: req.Prompt,
		System: req.System,
		Stream: false,
	})
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathGenerate, bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var out GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return &out, nil
}

// Ping checks /api/tags within the probe timeout.
func (c *clientImpl) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	_, err := c.tags(ctx)
	return err
}

// ListModels returns the installed model names.
func (c *clientImpl) ListModels(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	tags, err := c.tags(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

func (c *clientImpl) tags(ctx context.Context) (*tagsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathTags, nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var out tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return &out, nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
	if resp.StatusCode == http.StatusNotFound {
		return &ClientError{Type: ErrTypeModelNotFound, Message: "model not found", Cause: errors.New(string(body))}
	}
	return &ClientError{
		Type:    ErrTypeInvalidResponse,
		Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		Cause:   errors.New(string(body)),
	}
}

// classify maps transport errors onto ClientError types.
func classify(err error) error {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return err
	}

	var apiErr *openaicompat.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return &ClientError{Type: ErrTypeModelNotFound, Message: "model not found", Cause: err}
		}
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "unexpected response", Cause: err}
	}
	if errors.Is(err, openaicompat.ErrEmptyResponse) {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "empty response", Cause: err}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &ClientError{Type: ErrTypeTimeout, Message: "request timed out", Cause: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ClientError{Type: ErrTypeTimeout, Message: "request timed out", Cause: err}
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return &ClientError{Type: ErrTypeNotRunning, Message: "Ollama is not running", Cause: err}
	}

	return &ClientError{Type: ErrTypeConnection, Message: "request failed", Cause: err}
}
