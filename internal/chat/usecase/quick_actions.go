package usecase

import (
	"context"
	"strings"

	"github-agent/internal/chat"
)

func (uc *implUseCase) QuickActions(ctx context.Context) []chat.QuickAction {
	return chat.DefaultQuickActions()
}

// RunQuickAction completes the chosen prompt with Extra and sends it.
func (uc *implUseCase) RunQuickAction(ctx context.Context, input chat.RunQuickActionInput) (chat.SendOutput, error) {
	qa, ok := findQuickAction(input.ID)
	if !ok {
		return chat.SendOutput{}, chat.ErrQuickActionUnknown
	}

	prompt := qa.Prompt
	if qa.NeedsInput {
		extra := strings.TrimSpace(input.Extra)
		if extra == "" {
			return chat.SendOutput{}, chat.ErrQuickActionInput
		}
		prompt += extra
	}

	return uc.Send(ctx, chat.SendInput{
		SessionID: input.SessionID,
		Message:   prompt,
	})
}

func findQuickAction(id string) (chat.QuickAction, bool) {
	for _, qa := range chat.DefaultQuickActions() {
		if qa.ID == id {
			return qa, true
		}
	}
	return chat.QuickAction{}, false
}
