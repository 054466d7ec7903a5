package timeparse

import (
	"regexp"
	"strconv"
	"strings"
)

var clockRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)

// ParseClock parses a clock expression such as "3pm", "3:30 PM", "14:30"
// or "9" into an hour/minute pair. Without a meridiem the value is read
// as 24-hour time; "12am" is midnight and "12pm" is noon.
func ParseClock(expr string) (hour, minute int, ok bool) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" {
		return 0, 0, false
	}

	m := clockRe.FindStringSubmatch(expr)
	if m == nil {
		return 0, 0, false
	}

	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch m[3] {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
