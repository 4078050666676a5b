package ollama

import "time"

const (
	DefaultBaseURL      = "http://localhost:11434"
	DefaultModel        = "qwen2.5-coder:7b"
	DefaultTimeout      = 120 * time.Second
	DefaultProbeTimeout = 5 * time.Second

	pathGenerate = "/api/generate"
	pathTags     = "/api/tags"
	pathOpenAI   = "/v1"
)
