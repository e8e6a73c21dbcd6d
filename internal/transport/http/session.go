package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "storefront_session"
	sessionKey    = "session_id"
)

// SessionMiddleware resolves the shopper session ID from the session
// cookie, minting and setting a fresh one when absent. Handlers read
// the ID from the gin context.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetCookie(sessionCookie, id, 7*24*3600, "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

// sessionID returns the session ID resolved by SessionMiddleware.
func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
