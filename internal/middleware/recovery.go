package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Recovery turns a handler panic into a 500 in the api's error envelope and
// logs it with the request and session it happened in.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			requestID := RequestIDFrom(c)
			event := log.Error().
				Interface("panic", r).
				Str("request_id", requestID).
				Str("method", c.Request.Method).
				Str("route", c.FullPath())
			if session, ok := CurrentSession(c); ok {
				event = event.
					Str("session_id", session.ID).
					Str("user_id", session.Identity.ID).
					Str("role", string(session.Identity.Role))
			}
			event.Msg("panic recovered")

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "internal_error",
				"message":   "unexpected server error",
				"requestId": requestID,
			})
		}()
		c.Next()
	}
}
