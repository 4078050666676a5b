package orchestrator

import (
	"context"

	"github-agent/internal/agent"
	"github-agent/internal/intent"
)

// Process runs one user turn: classify, gate, dispatch, format.
// Every failure comes back as data in the Envelope.
func (o *Orchestrator) Process(ctx context.Context, cred agent.Credential, text string) Envelope {
	in := o.classifier.Classify(ctx, text)
	o.transition(ctx, StateStart, StateClassifying, in)

	if !o.Accept(in) {
		o.transition(ctx, StateClassifying, StateRejected, in)
		return Envelope{
			Success: false,
			Message: MsgNotUnderstood,
		}
	}

	o.transition(ctx, StateClassifying, StateDispatching, in)
	res := o.dispatcher.Dispatch(ctx, o.remotes(cred), in)

	o.transition(ctx, StateDispatching, StateFormatting, in)
	formatted := o.formatter.Format(ctx, in.Action, res)

	o.transition(ctx, StateFormatting, StateDone, in)
	return Envelope{
		Success:   true,
		Intent:    &in,
		Result:    &res,
		Formatted: formatted,
	}
}

// Accept is the confidence gate.
func (o *Orchestrator) Accept(in intent.Intent) bool {
	return in.Action != intent.ActionUnknown && in.Confidence >= o.threshold
}

func (o *Orchestrator) transition(ctx context.Context, from, to State, in intent.Intent) {
	o.l.Debugf(ctx, LogMsgTransition, LogPrefixProcess, from, to, in.Action, in.Confidence)
}
