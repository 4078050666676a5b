package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session makes sure every request carries a session id, issuing a new
// gha_session cookie when the browser has none or an invalid one.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, id, int(SessionCookieTTL.Seconds()), "/", "", m.cookieSecure, true)
		}
		c.Set(ContextKeySessionID, id)
		c.Next()
	}
}

// GetSessionID returns the id stored by Session, or "".
func GetSessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}
