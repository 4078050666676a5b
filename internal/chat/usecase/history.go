package usecase

import (
	"context"

	"github-agent/internal/session"
)

func (uc *implUseCase) History(ctx context.Context, sessionID string) []session.Turn {
	return uc.transcripts.History(sessionID)
}

func (uc *implUseCase) ClearHistory(ctx context.Context, sessionID string) {
	uc.transcripts.Clear(sessionID)
	uc.l.Infof(ctx, "internal.chat.usecase.ClearHistory: session=%s", sessionID)
}
