package orchestrator

// Log prefixes
const (
	LogPrefixProcess = "internal.agent.orchestrator.Process"
)

// Gate configuration
const (
	DefaultConfidenceThreshold = 0.3
)

// User-facing messages
const (
	MsgNotUnderstood = "I didn't understand the request. Try: 'List my repositories' or 'Show issues of microsoft/vscode'"
)

// Log messages
const (
	LogMsgTransition = "%s: %s -> %s (action=%s confidence=%.2f)"
)
