package middleware

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/response"
	"calendar-assistant/pkg/scope"
)

// scopeKey is the gin context key the auth middleware stores the
// resolved scope under.
const scopeKey = "scope"

// Auth verifies the session cookie and parks the resolved scope in the
// request context. Requests without a valid session never reach the
// handler.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(scope.CookieName)
		if err != nil || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:    payload.UserID,
			SessionID: payload.SessionID,
			Email:     payload.Email,
		})
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
