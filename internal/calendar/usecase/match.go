package usecase

import (
	"strings"
	"time"

	"calendar-assistant/internal/model"
)

// titleMatches reports whether a search query fuzzily matches an event
// title. Both sides split into lowercase tokens; any query token being
// a substring of any title token, or the reverse, is a match. The
// overmatch is deliberate: "standup" finds "Daily Standup" and
// "meeting" finds "Team Meeting".
func titleMatches(query, title string) bool {
	queryWords := strings.Fields(strings.ToLower(query))
	titleWords := strings.Fields(strings.ToLower(title))

	for _, qw := range queryWords {
		for _, tw := range titleWords {
			if strings.Contains(tw, qw) || strings.Contains(qw, tw) {
				return true
			}
		}
	}
	return false
}

// startsAtClock reports whether a timed event starts at exactly the
// given hour and minute. All-day events never match a time filter:
// they have no comparable clock.
func startsAtClock(e model.CalendarEvent, loc *time.Location, hour, minute int) bool {
	start, ok := e.StartsAt(loc)
	if !ok {
		return false
	}
	return start.Hour() == hour && start.Minute() == minute
}
