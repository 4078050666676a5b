package openaicompat

import "time"

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "qwen2.5-coder:7b"

	// DefaultBaseURL points at Ollama's OpenAI-compatible endpoint.
	DefaultBaseURL = "http://localhost:11434/v1"

	// DefaultTimeout covers slow local inference.
	DefaultTimeout = 120 * time.Second
)
