// Package middlewares holds the gin middleware chain.
package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/borsatogiordano/daily-diet-api/repositories"
)

// SessionCookie is the cookie carrying the session id. The same value is
// accepted in the Session-Id header for non-browser clients.
const (
	SessionCookie = "session_id"
	SessionHeader = "Session-Id"

	// UserIDKey is the gin context key the gate binds the owner id under.
	UserIDKey = "userID"
)

// SessionAuth resolves the presented session token to a user before any
// protected handler runs. Exactly one lookup per request; no caching.
// Missing, malformed and unknown tokens are all a plain 401.
func SessionAuth(users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			token = c.GetHeader(SessionHeader)
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		sessionID, err := uuid.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user, err := users.FindBySessionID(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not resolve session"})
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Next()
	}
}

// BoundUserID returns the owner id the gate attached to the request.
func BoundUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
