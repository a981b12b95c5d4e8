package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/response"
)

const (
	SessionKey   = "session"
	SessionIDKey = "session_id"
)

// SessionResolver looks up an active session by its id.
type SessionResolver interface {
	Session(ctx context.Context, sessionID string) (*internal.Session, error)
}

// SessionMiddleware requires "Authorization: Bearer <session id>" and stores
// the resolved session on the gin context.
func SessionMiddleware(resolver SessionResolver, logger internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token != "" {
				s, err := resolver.Session(c.Request.Context(), token)
				if err == nil {
					c.Set(SessionKey, s)
					c.Set(SessionIDKey, token)
					c.Next()
					return
				}
				logger.Debugf("session lookup failed: %v", err)
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Unauthorized"))
	}
}

func CurrentSession(c *gin.Context) *internal.Session {
	return c.MustGet(SessionKey).(*internal.Session)
}

func CurrentSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
