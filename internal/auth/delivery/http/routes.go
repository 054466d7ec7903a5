package http

import (
	"calendar-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// loginsPerMinute throttles login attempts per client.
const loginsPerMinute = 10

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Login
// and callback run unauthenticated: they are how a session starts.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/login", mw.RateLimit(loginsPerMinute), h.Login)
	rg.GET("/callback", h.Callback)
	rg.GET("/user", mw.Auth(), h.User)
	rg.POST("/logout", mw.Auth(), h.Logout)
}
