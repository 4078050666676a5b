package orchestrator

import (
	"github-agent/internal/agent"
	"github-agent/internal/intent"
)

// State is a step of the pipeline.
type State string

const (
	StateStart       State = "start"
	StateClassifying State = "classifying"
	StateRejected    State = "rejected"
	StateDispatching State = "dispatching"
	StateFormatting  State = "formatting"
	StateDone        State = "done"
)

// Envelope is the outcome of one Process call. Success is false only when
// the confidence gate rejects the request; remote failures ride in Result.
type Envelope struct {
	Success   bool           `json:"success"`
	Intent    *intent.Intent `json:"intent,omitempty"`
	Result    *agent.Result  `json:"result,omitempty"`
	Formatted string         `json:"formatted,omitempty"`
	Message   string         `json:"message,omitempty"`
}

// Config holds the gate policy.
type Config struct {
	// ConfidenceThreshold is the minimum confidence the gate accepts.
	// Nil selects DefaultConfidenceThreshold.
	ConfidenceThreshold *float64
}
