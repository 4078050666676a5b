package log

import (
	"context"
	"testing"
)

func TestInit_FallsBackOnInvalidLevel(t *testing.T) {
	l := Init(ZapConfig{Level: "loud", Mode: "debug", Encoding: "console"})
	if l == nil {
		t.Fatal("expected a logger")
	}
	l.Infof(context.Background(), "hello %s", "world")
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := ctx.Value(RequestIDKey); got != "req-1" {
		t.Errorf("request id = %v, want req-1", got)
	}

	l := Init(ZapConfig{Level: "debug", Encoding: "json", Mode: ModeProduction})
	l.Debug(ctx, "with request id")
	l.Warn(context.TODO(), "todo context")
}
