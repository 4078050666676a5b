package log

import "go.uber.org/zap"

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

type ctxKey string

// RequestIDKey is the context key carrying the request id attached to every log line.
const RequestIDKey ctxKey = "request_id"

const (
	ModeProduction   = "production"
	EncodingJSON     = "json"
	EncodingConsole  = "console"
	defaultLevelName = "info"
)
