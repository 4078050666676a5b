package chat

import (
	"context"

	"github-agent/internal/session"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Conversation
	Send(ctx context.Context, input SendInput) (SendOutput, error)
	History(ctx context.Context, sessionID string) []session.Turn
	ClearHistory(ctx context.Context, sessionID string)

	// Quick actions
	QuickActions(ctx context.Context) []QuickAction
	RunQuickAction(ctx context.Context, input RunQuickActionInput) (SendOutput, error)
}
