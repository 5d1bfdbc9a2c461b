package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ComputingVictor/Mercadona-Agent/services"
)

const (
	SessionCookieName = "mercadona_session"
	SessionContextKey = "sessionID"

	sessionCookieMaxAge = 30 * 24 * 60 * 60 // seconds, matches token expiry
)

// Session resolves the anonymous session behind every collections and
// assistant request. A missing or invalid cookie gets a fresh session ID and
// a new signed cookie; the request always proceeds with a session in context.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookieName); err == nil {
			if claims, err := services.VerifySessionToken(token); err == nil {
				c.Set(SessionContextKey, claims.SessionID)
				c.Next()
				return
			}
		}

		sessionID := uuid.NewString()
		token, err := services.GenerateSessionToken(sessionID)
		if err != nil {
			// still serve the request with an unpersisted session
			log.Printf("[session] failed to sign session token: %v", err)
			c.Set(SessionContextKey, sessionID)
			c.Next()
			return
		}

		c.SetCookie(SessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
		c.Set(SessionContextKey, sessionID)
		c.Next()
	}
}

// SessionID reads the resolved session ID from the Gin context.
func SessionID(c *gin.Context) string {
	if v, exists := c.Get(SessionContextKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
