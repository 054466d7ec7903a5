package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/calendar"
)

// renderError translates request errors into the flat bodies the
// frontend expects. Remote fetch failures never reach here; the use
// case folds them into an empty grid.
func (h *handler) renderError(c *gin.Context, err error) {
	if errors.Is(err, calendar.ErrInvalidRange) {
		c.JSON(http.StatusBadRequest, errorResp{Error: "End must be after start"})
		return
	}
	c.JSON(http.StatusBadRequest, errorResp{Error: "Invalid date format"})
}
