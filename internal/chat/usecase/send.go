package usecase

import (
	"context"
	"strings"

	"github-agent/internal/agent"
	"github-agent/internal/agent/orchestrator"
	"github-agent/internal/chat"
	"github-agent/internal/session"
)

// Send runs message through the pipeline with the stored credential and
// records both turns in the session transcript.
func (uc *implUseCase) Send(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}

	token, err := uc.tokens.Token()
	if err != nil {
		return chat.SendOutput{}, err
	}

	env := uc.pipeline.Process(ctx, agent.Credential{Token: token}, msg)
	reply := replyOf(env)

	uc.transcripts.Append(input.SessionID,
		session.Turn{Role: session.RoleUser, Content: msg},
		session.Turn{Role: session.RoleAssistant, Content: reply},
	)

	uc.l.Infof(ctx, "internal.chat.usecase.Send: session=%s success=%t", input.SessionID, env.Success)

	return chat.SendOutput{
		Prompt:   msg,
		Reply:    reply,
		Envelope: env,
	}, nil
}

func replyOf(env orchestrator.Envelope) string {
	if env.Success {
		return env.Formatted
	}
	return chat.RejectedReplyPrefix + env.Message
}
