package format

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github-agent/internal/agent"
	"github-agent/internal/intent"
	"github-agent/pkg/llmprovider"
)

// Format turns res into user-facing text. Error records never reach the
// model. A failed model call yields its error text; Format itself never fails.
func (f *Formatter) Format(ctx context.Context, action intent.Action, res agent.Result) string {
	if res.Failed() {
		return fmt.Sprintf(ErrorTemplate, res.Error.Message)
	}

	data := f.Serialize(res.Data)
	if f.llm == nil {
		return fmt.Sprintf(OfflineDataFormat, data)
	}

	resp, err := f.llm.Complete(ctx, &llmprovider.CompletionRequest{
		Prompt: fmt.Sprintf(PromptFormatData, f.language, action, data),
		System: PromptSystem,
	})
	if err != nil {
		f.l.Warnf(ctx, "%s: formatter degraded for %s: %v", LogPrefixFormat, action, err)
		return fmt.Sprintf(DegradedTemplate, err)
	}

	return strings.TrimSpace(resp.Content)
}

// Serialize renders data as compact JSON capped at the configured number of characters.
func (f *Formatter) Serialize(data any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return truncate(fmt.Sprintf("%v", data), f.maxChars)
	}
	return truncate(strings.TrimRight(buf.String(), "\n"), f.maxChars)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
