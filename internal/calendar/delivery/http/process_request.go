package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/calendar"
)

// defaultWindowDays is the grid window when the client sends no range.
const defaultWindowDays = 60

type eventsReq struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

// processEventsReq parses the window query parameters, defaulting to
// the start of the current month plus defaultWindowDays.
func (h *handler) processEventsReq(c *gin.Context) (calendar.RangeInput, error) {
	var req eventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return calendar.RangeInput{}, err
	}
	return req.toInput(time.Now())
}

func (r eventsReq) toInput(now time.Time) (calendar.RangeInput, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if r.Start != "" {
		t, err := parseISO(r.Start)
		if err != nil {
			return calendar.RangeInput{}, err
		}
		start = t
	}

	end := start.AddDate(0, 0, defaultWindowDays)
	if r.End != "" {
		t, err := parseISO(r.End)
		if err != nil {
			return calendar.RangeInput{}, err
		}
		end = t
	}

	if !end.After(start) {
		return calendar.RangeInput{}, calendar.ErrInvalidRange
	}

	return calendar.RangeInput{Start: start, End: end}, nil
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISO(value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}
