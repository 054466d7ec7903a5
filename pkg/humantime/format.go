package humantime

import (
	"fmt"
	"strings"
	"time"

	"calendar-assistant/pkg/timeparse"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"15:04:05",
	"15:04",
}

// FormatDate renders an ISO date or datetime string as "March 1st, 2026".
// Input that does not parse (including already-conversational strings)
// is returned unchanged.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return fmt.Sprintf("%s %s, %d", t.Month(), Ordinal(t.Day()), t.Year())
	}
	return value
}

// FormatTime renders an ISO datetime, a 24-hour clock string, or a
// meridiem form like "3pm" as "3:00 PM" with no leading zero on the
// hour. Input that does not parse is returned unchanged.
func FormatTime(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return clock(t.Hour(), t.Minute())
	}
	if hour, minute, ok := timeparse.ParseClock(value); ok {
		return clock(hour, minute)
	}
	return value
}

// FormatRange renders an event's start/end pair as "3:00 PM - 4:00 PM".
// If either endpoint lacks a time component the event is all-day and
// the literal "All day" is returned.
func FormatRange(start, end string) string {
	if !strings.Contains(start, "T") || !strings.Contains(end, "T") {
		return "All day"
	}
	return FormatTime(start) + " - " + FormatTime(end)
}

// Ordinal returns the day number with its English ordinal suffix.
// The teens band (11th, 12th, 13th) always takes "th".
func Ordinal(day int) string {
	suffix := "th"
	if day%100 < 10 || day%100 > 20 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

func clock(hour, minute int) string {
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minute, meridiem)
}
