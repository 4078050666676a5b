package middleware

import "time"

const (
	SessionCookieName = "gha_session"
	SessionCookieTTL  = 24 * time.Hour
	RequestIDHeader   = "X-Request-ID"

	// gin context keys
	ContextKeySessionID = "session_id"
	ContextKeyRequestID = "request_id"

	LogPrefixRecovery  = "internal.middleware.Recovery"
	LogPrefixRateLimit = "internal.middleware.RateLimit"

	DefaultRequestsPerMin = 60
	limiterCacheSize      = 1000
	limiterTTL            = 5 * time.Minute
)
