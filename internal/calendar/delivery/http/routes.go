package http

import (
	"calendar-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// eventsPerMinute throttles the grid endpoint. The calendar view
// refetches on every navigation, so this is the loosest limit.
const eventsPerMinute = 60

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/calendar")
	{
		events.GET("/events", mw.Auth(), mw.RateLimit(eventsPerMinute), h.Events)
	}
}
