package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/auth"
	"calendar-assistant/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Callback(c *gin.Context)
	User(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	l             log.Logger
	uc            auth.UseCase
	frontendURL   string
	sessionExpiry time.Duration
}

// New creates a new HTTP handler for the auth domain. frontendURL is
// where callback redirects land; sessionExpiry bounds the cookie
// lifetime to the token's.
func New(l log.Logger, uc auth.UseCase, frontendURL string, sessionExpiry time.Duration) *handler {
	return &handler{
		l:             l,
		uc:            uc,
		frontendURL:   frontendURL,
		sessionExpiry: sessionExpiry,
	}
}
