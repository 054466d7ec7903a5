package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/response"
)

// Events godoc
// @Summary     List events in a window
// @Description Returns every calendar event between start and end for the
// @Description grid view. Without parameters the window defaults to the
// @Description start of the current month plus sixty days.
// @Tags        Calendar
// @Produce     json
// @Param       start query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param       end   query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Success     200 {object} eventsResp
// @Failure     400 {object} errorResp "Malformed date or inverted range"
// @Failure     401 {object} response.Resp "Not authenticated"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Router      /api/calendar/events [GET]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	input, err := h.processEventsReq(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	events := h.uc.EventsInRange(ctx, sc, input)

	c.JSON(http.StatusOK, eventsResp{Success: true, Events: events})
}
