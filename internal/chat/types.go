package chat

import "github-agent/internal/agent/orchestrator"

// QuickAction is a canned prompt. When NeedsInput is set the caller must
// append completion text (a query, an owner/repo) before running it.
type QuickAction struct {
	ID         string
	Label      string
	Prompt     string
	NeedsInput bool
}

// --- UseCase Inputs ---

type SendInput struct {
	SessionID string
	Message   string
}

type RunQuickActionInput struct {
	SessionID string
	ID        string
	Extra     string
}

// --- UseCase Outputs ---

type SendOutput struct {
	Prompt   string
	Reply    string
	Envelope orchestrator.Envelope
}
