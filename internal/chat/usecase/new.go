package usecase

import (
	"context"

	"github-agent/internal/agent"
	"github-agent/internal/agent/orchestrator"
	"github-agent/internal/session"
	pkgLog "github-agent/pkg/log"
)

// Pipeline runs one request end to end.
type Pipeline interface {
	Process(ctx context.Context, cred agent.Credential, text string) orchestrator.Envelope
}

// TokenSource hands out the stored GitHub token.
type TokenSource interface {
	Token() (string, error)
}

// Transcripts stores per-session chat history.
type Transcripts interface {
	Append(id string, turns ...session.Turn)
	History(id string) []session.Turn
	Clear(id string)
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	pipeline    Pipeline
	tokens      TokenSource
	transcripts Transcripts
	l           pkgLog.Logger
}

// New creates a new chat UseCase implementation.
func New(pipeline Pipeline, tokens TokenSource, transcripts Transcripts, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		pipeline:    pipeline,
		tokens:      tokens,
		transcripts: transcripts,
		l:           l,
	}
}
