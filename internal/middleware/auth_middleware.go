package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/HoseaMuriira/iruma-portal/internal/app/auth"
	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
	"github.com/HoseaMuriira/iruma-portal/internal/app/models/dto"
)

// sessionContextKey is the gin context key the session snapshot lives under.
const sessionContextKey = "session"

// SessionReader resolves an opaque cookie token to a session record.
type SessionReader interface {
	Get(ctx context.Context, token string) (*models.Session, error)
}

// AuthMiddleware gates routes on the presence of a valid session cookie and,
// optionally, on the session's role.
type AuthMiddleware struct {
	sessions   SessionReader
	cookieName string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions SessionReader, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
	}
}

// SessionAuth resolves the session cookie and stores the snapshot on the
// request context. Requests without a live session are rejected with 401
// before any handler runs.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized")))
			return
		}

		session, err := m.sessions.Get(c.Request.Context(), token)
		if err != nil {
			// Unknown and expired tokens look identical to the client
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized")))
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// RoleRequired checks the session role against the required role using the
// portal policy; admins pass every check.
func (m *AuthMiddleware) RoleRequired(required models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized")))
			return
		}

		if !appauth.Allowed(required, session.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeForbidden, "Forbidden")))
			return
		}

		c.Next()
	}
}

// SessionFromContext returns the session snapshot stored by SessionAuth.
func SessionFromContext(c *gin.Context) (*models.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*models.Session)
	return session, ok
}
