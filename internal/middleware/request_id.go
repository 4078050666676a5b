package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "github-agent/pkg/log"
)

// RequestID propagates X-Request-ID (or a fresh uuid) into the response and
// the request context so every log line of the request carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(pkgLog.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
