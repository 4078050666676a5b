package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github-agent/pkg/llmprovider"
)

// Classify determines the Intent of text. It never fails: any model or
// parse problem is logged and answered by Fallback.
func (c *Classifier) Classify(ctx context.Context, text string) Intent {
	if c.llm == nil {
		return Fallback(text, c.policy)
	}

	resp, err := c.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: PromptClassifierSystem,
		Messages:          []llmprovider.Message{{Role: "user", Content: text}},
		Temperature:       ClassifierTemperature,
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return Fallback(text, c.policy)
	}

	out, err := ParseModelOutput(resp.Content)
	if err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return Fallback(text, c.policy)
	}

	if !out.Action.Valid() {
		c.l.Infof(ctx, "%s: %s: %s", LogPrefixClassify, LogMsgUnrecognizedAction, out.Action)
	}
	out.Params = enrich(out.Params, text)

	c.l.Infof(ctx, "%s: Classified as %s (confidence: %.2f)", LogPrefixClassify, out.Action, out.Confidence)
	return out
}

// enrich keeps clean model params and repairs the rest.
func enrich(params map[string]string, text string) map[string]string {
	owner, repo := params[ParamOwner], params[ParamRepo]
	if owner != "" && repo != "" && !strings.Contains(owner, "/") {
		return params
	}
	return Normalize(params, text)
}

// ParseModelOutput extracts and decodes the JSON object in raw model text.
// Param values are coerced to strings; nulls and blanks are dropped. An action outside
// the known set is kept as-is; a missing one becomes unknown. Confidence is clamped
// into [0, 1]; NaN and infinities are rejected.
func ParseModelOutput(raw string) (Intent, error) {
	span, err := ExtractJSONObject(raw)
	if err != nil {
		return Intent{}, err
	}

	var out modelOutput
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		return Intent{}, fmt.Errorf("decode model output: %w", err)
	}

	confidence, err := toFloat(out.Confidence)
	if err != nil {
		return Intent{}, err
	}
	if math.IsNaN(confidence) || math.IsInf(confidence, 0) {
		return Intent{}, fmt.Errorf("invalid confidence %v", confidence)
	}
	confidence = min(max(confidence, 0), 1)

	action := Action(strings.ToLower(strings.TrimSpace(out.Action)))
	if action == "" {
		action = ActionUnknown
	}

	params := make(map[string]string, len(out.Params))
	for k, v := range out.Params {
		if s, ok := stringify(v); ok {
			params[k] = s
		}
	}

	return Intent{
		Action:     action,
		Params:     params,
		Confidence: confidence,
	}, nil
}

func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		t = strings.TrimSpace(t)
		return t, t != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return t, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid confidence %q: %w", t, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("invalid confidence type %T", v)
	}
}
