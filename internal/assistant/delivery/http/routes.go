package http

import (
	"calendar-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// messagesPerMinute throttles the chat endpoint. Every message costs an
// LLM call, so this is the tightest authenticated limit.
const messagesPerMinute = 30

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/message", mw.Auth(), mw.RateLimit(messagesPerMinute), h.Message)
}
