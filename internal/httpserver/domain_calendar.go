package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/calendar"
	calendarHTTP "calendar-assistant/internal/calendar/delivery/http"
	calendarRepo "calendar-assistant/internal/calendar/repository/google"
	calendarUC "calendar-assistant/internal/calendar/usecase"
	"calendar-assistant/internal/middleware"
)

// setupCalendarDomain initializes the calendar domain and registers
// its routes. Events live in Google Calendar, so the repository is an
// API client rather than a database; it authenticates per user through
// the auth domain's token provider.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tokens calendarRepo.TokenProvider) (calendar.UseCase, error) {
	// 1. Repository
	repo := calendarRepo.New(tokens, srv.l)

	// 2. UseCase
	uc := calendarUC.New(repo, srv.l, srv.assistant.DefaultTimezone)

	// 3. HTTP Handler
	h := calendarHTTP.New(srv.l, uc)

	// 4. Routes: /api/calendar/events
	calendarHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Calendar domain registered")
	return uc, nil
}
