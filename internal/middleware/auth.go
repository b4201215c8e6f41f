package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lumenquest/internal/models"
)

const (
	sessionKey     = "current_session"
	accessTokenKey = "access_token"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.Session, error)
}

// Auth resolves the bearer token to a live session. Browsers cannot set
// headers on an EventSource, so the token may also come as the
// access_token query parameter.
func Auth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		session, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_session"})
			return
		}

		c.Set(accessTokenKey, token)
		c.Set(sessionKey, session)
		c.Next()
	}
}

// CurrentSession returns the session stored by Auth.
func CurrentSession(c *gin.Context) (models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return models.Session{}, false
	}
	session, ok := v.(models.Session)
	return session, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return c.Query(accessTokenKey)
}
