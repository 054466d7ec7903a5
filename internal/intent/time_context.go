package intent

import "time"

// timeContext holds the resolved "today" values embedded in the prompt
// so the model converts relative dates against the same clock the
// executor uses.
type timeContext struct {
	DayOfWeek    string
	Today        string
	Year         int
	Tomorrow     string
	NextFriday   string
	NextThursday string
}

// buildTimeContext derives the prompt dates from the given instant.
// Weekday examples are strictly in the future: on a Friday, "next
// Friday" is seven days out, never today.
func buildTimeContext(now time.Time) timeContext {
	return timeContext{
		DayOfWeek:    now.Weekday().String(),
		Today:        now.Format(DateFormatISO),
		Year:         now.Year(),
		Tomorrow:     now.AddDate(0, 0, 1).Format(DateFormatISO),
		NextFriday:   nextWeekday(now, time.Friday).Format(DateFormatISO),
		NextThursday: nextWeekday(now, time.Thursday).Format(DateFormatISO),
	}
}

func nextWeekday(now time.Time, target time.Weekday) time.Time {
	daysUntil := int(target - now.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return now.AddDate(0, 0, daysUntil)
}
