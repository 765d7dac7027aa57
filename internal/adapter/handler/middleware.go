package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

const sessionKey = "session"

type SessionResolver interface {
	Current(ctx context.Context) (domain.Session, error)
}

// RequireSession resolves the signed-in user once per request and stores
// the Session in the gin context.
func RequireSession(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := resolver.Current(c.Request.Context())
		if err != nil {
			respondWithDomainError(c, err)
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) (domain.Session, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		RespondWithError(c, http.StatusUnauthorized, domain.UserMessage(domain.ErrUnauthenticated))
		return domain.Session{}, false
	}
	return value.(domain.Session), true
}

func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})

		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Debug("request served")
	}
}
