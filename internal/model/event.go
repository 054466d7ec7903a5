package model

import (
	"strings"
	"time"
)

// CalendarEvent is a remote calendar entry, never owned locally.
// Start and End keep the store's raw representation: RFC3339 for timed
// events, "2006-01-02" for all-day events. All-day is detected by the
// missing time component, never by a separate flag.
type CalendarEvent struct {
	ID       string
	Title    string
	Start    string
	End      string
	Location string
	HTMLLink string
}

var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// AllDay reports whether the event lacks a start time component.
func (e CalendarEvent) AllDay() bool {
	return !strings.Contains(e.Start, "T")
}

// StartsAt parses the event's start wall-clock time. All-day and
// unparseable events return ok=false.
func (e CalendarEvent) StartsAt(loc *time.Location) (time.Time, bool) {
	return parseEventTime(e.Start, loc)
}

// EndsAt parses the event's end wall-clock time.
func (e CalendarEvent) EndsAt(loc *time.Location) (time.Time, bool) {
	return parseEventTime(e.End, loc)
}

func parseEventTime(value string, loc *time.Location) (time.Time, bool) {
	if !strings.Contains(value, "T") {
		return time.Time{}, false
	}
	for _, layout := range eventTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// EventCandidate is one entry of a disambiguation list or agenda,
// carrying a preformatted display range alongside the raw timestamps.
// Location is only populated on agenda entries.
type EventCandidate struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	TimeDisplay string `json:"time"`
	Location    string `json:"location,omitempty"`
}

// EventSummary is the created/updated event attached to a successful
// create or move result.
type EventSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
	Link  string `json:"link,omitempty"`
}
