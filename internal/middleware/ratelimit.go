package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github-agent/pkg/response"
)

// RateLimit throttles each session (or client IP before a session exists).
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := GetSessionID(c)
		if key == "" {
			key = c.ClientIP()
		}
		if !m.limiter.Allow(key) {
			m.l.Warnf(c.Request.Context(), "%s: rate limit exceeded for %s", LogPrefixRateLimit, key)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter holds one token bucket per key; idle buckets expire.
type rateLimiter struct {
	mu       sync.Mutex // guards get-or-create of a key's bucket
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = DefaultRequestsPerMin
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	return rl.limiterFor(key).Allow()
}

func (rl *rateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}
