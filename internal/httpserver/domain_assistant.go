package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "calendar-assistant/internal/assistant/delivery/http"
	assistantUC "calendar-assistant/internal/assistant/usecase"
	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/middleware"
)

// setupAssistantDomain initializes the conversational domain and
// registers its routes. It has no repository of its own: parsed
// commands execute through the calendar use case, and pending
// confirmations live in memory.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, calendarUseCase calendar.UseCase) error {
	// 1. UseCase
	uc := assistantUC.New(calendarUseCase, srv.parser, srv.l, srv.assistant.PendingTTL)

	// 2. HTTP Handler
	h := assistantHTTP.New(srv.l, uc)

	// 3. Routes: /api/message
	assistantHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
