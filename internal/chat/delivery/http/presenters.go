package http

import (
	"github-agent/internal/agent/orchestrator"
	"github-agent/internal/chat"
	"github-agent/internal/session"
	"github-agent/pkg/response"
)

// --- Request DTOs ---

type sendReq struct {
	Message string `json:"message" binding:"required,max=4000"`
}

func (r sendReq) validate() error { return nil }

func (r sendReq) toInput(sessionID string) chat.SendInput {
	return chat.SendInput{
		SessionID: sessionID,
		Message:   r.Message,
	}
}

// ---

type runQuickActionReq struct {
	ID    string `json:"id" binding:"required"`
	Extra string `json:"extra" binding:"max=1000"`
}

func (r runQuickActionReq) validate() error { return nil }

func (r runQuickActionReq) toInput(sessionID string) chat.RunQuickActionInput {
	return chat.RunQuickActionInput{
		SessionID: sessionID,
		ID:        r.ID,
		Extra:     r.Extra,
	}
}

// --- Response DTOs ---

type sendResp struct {
	Prompt string `json:"prompt"`
	Reply  string `json:"reply"`
	orchestrator.Envelope
}

func (h *handler) newSendResp(o chat.SendOutput) sendResp {
	return sendResp{
		Prompt:   o.Prompt,
		Reply:    o.Reply,
		Envelope: o.Envelope,
	}
}

type turnResp struct {
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	Timestamp response.DateTime `json:"timestamp"`
}

type historyResp struct {
	Messages []turnResp `json:"messages"`
}

func (h *handler) newHistoryResp(turns []session.Turn) historyResp {
	out := make([]turnResp, 0, len(turns))
	for _, t := range turns {
		out = append(out, turnResp{
			Role:      string(t.Role),
			Content:   t.Content,
			Timestamp: response.DateTime(t.Timestamp),
		})
	}
	return historyResp{Messages: out}
}

type quickActionResp struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Prompt     string `json:"prompt"`
	NeedsInput bool   `json:"needs_input"`
}

type quickActionsResp struct {
	Actions []quickActionResp `json:"actions"`
}

func (h *handler) newQuickActionsResp(qas []chat.QuickAction) quickActionsResp {
	out := make([]quickActionResp, 0, len(qas))
	for _, qa := range qas {
		out = append(out, quickActionResp{
			ID:         qa.ID,
			Label:      qa.Label,
			Prompt:     qa.Prompt,
			NeedsInput: qa.NeedsInput,
		})
	}
	return quickActionsResp{Actions: out}
}
