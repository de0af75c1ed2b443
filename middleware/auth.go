package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-portal/models"
)

const sessionContextKey = "portal_session"

// SessionResolver resolves a portal session id into the stored session.
type SessionResolver interface {
	Resolve(ctx context.Context, id string) (*models.Session, error)
}

// Session reads "Authorization: Bearer <portal-session-id>" and, when it
// resolves, attaches the session to the request. A missing or dead session is
// not an error here: guests browse rooms without one, and handlers that need
// auth check for themselves.
func Session(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			id := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if id != "" {
				if sess, err := resolver.Resolve(c.Request.Context(), id); err == nil {
					c.Set(sessionContextKey, sess)
				}
			}
		}
		c.Next()
	}
}

// SessionFrom returns the resolved session, or nil for guests.
func SessionFrom(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*models.Session)
	return sess
}
