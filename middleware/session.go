package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionIDKey is the context key holding the caller's session id.
const SessionIDKey = "session_id"

// SessionCookie is the fallback carrier for browsers that don't set the
// header themselves.
const SessionCookie = "session_id"

// Session resolves the caller's session id from the X-Session-ID header or
// the session cookie, minting a fresh id when neither is present. The id is
// echoed back on every response.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				sessionID = cookie
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookie, sessionID, 0, "/", "", false, true)
		}

		c.Set(SessionIDKey, sessionID)
		c.Header("X-Session-ID", sessionID)
		c.Next()
	}
}

// SessionID returns the session id resolved by the Session middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
