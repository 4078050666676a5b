package middleware

import (
	pkgLog "github-agent/pkg/log"
)

// Config tunes the middleware set.
type Config struct {
	// CookieSecure marks the session cookie Secure (production over TLS).
	CookieSecure   bool
	RequestsPerMin int
}

type Middleware struct {
	l            pkgLog.Logger
	cookieSecure bool
	limiter      *rateLimiter
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	return Middleware{
		l:            l,
		cookieSecure: cfg.CookieSecure,
		limiter:      newRateLimiter(cfg.RequestsPerMin),
	}
}
