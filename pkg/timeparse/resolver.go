package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resolver converts natural-language date and time expressions to
// absolute time.Time values in a fixed IANA timezone.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "America/Los_Angeles".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location {
	return r.location
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
}

// absoluteLayouts are tried in order against title-cased input.
// Layouts without a year resolve to the base year.
var absoluteLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	"January 2 2006",
	"January 2",
	"Jan 2, 2006",
	"Jan 2 2006",
	"Jan 2",
	"2 January 2006",
	"2 January",
	"01/02/2006",
	"1/2/2006",
	"1/2",
}

var (
	ordinalRe    = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)\b`)
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	titleCaser   = cases.Title(language.English)
)

// Resolve converts a date expression and an optional time expression
// into a start/end pair in the resolver's timezone. The end is always
// start + 1 hour; callers with an explicit end resolve it separately.
//
// Resolution never fails: an unparseable date falls back to the base
// date and an unparseable time to 12:00 noon.
func (r *Resolver) Resolve(dateExpr, timeExpr string, base time.Time) (time.Time, time.Time) {
	day := r.resolveDay(dateExpr, base)

	if hour, minute, ok := ParseClock(timeExpr); ok {
		day = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, r.location)
	} else if day.Hour() == 0 && day.Minute() == 0 {
		// No usable time anywhere: default to noon, never midnight,
		// so a bare date never lands on an all-day boundary.
		day = time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, r.location)
	}

	return day, day.Add(time.Hour)
}

// ResolveDate resolves a date expression to midnight of that day.
func (r *Resolver) ResolveDate(dateExpr string, base time.Time) time.Time {
	return r.StartOfDay(r.resolveDay(dateExpr, base))
}

// resolveDay resolves the day portion. Absolute datetime inputs keep
// their own clock; keyword and weekday inputs land on midnight.
func (r *Resolver) resolveDay(dateExpr string, base time.Time) time.Time {
	base = base.In(r.location)
	expr := strings.ToLower(strings.TrimSpace(dateExpr))

	switch expr {
	case "", "today":
		return r.StartOfDay(base)
	case "tomorrow":
		return r.StartOfDay(base.AddDate(0, 0, 1))
	case "yesterday":
		return r.StartOfDay(base.AddDate(0, 0, -1))
	}

	// "next friday" and a bare "friday" resolve the same way: the
	// next occurrence strictly in the future.
	if target, ok := weekdays[strings.TrimPrefix(expr, "next ")]; ok {
		return r.StartOfDay(r.nextWeekday(base, target))
	}

	if m := inDurationRe.FindStringSubmatch(expr); m != nil {
		return r.StartOfDay(r.addDuration(base, m[1], m[2]))
	}

	if t, ok := r.parseAbsolute(dateExpr, base); ok {
		return t
	}

	// Total parse failure falls back to the base date.
	return r.StartOfDay(base)
}

// nextWeekday returns the next occurrence of target strictly after
// base: a bare weekday name never resolves to the base day itself.
func (r *Resolver) nextWeekday(base time.Time, target time.Weekday) time.Time {
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

// addDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (r *Resolver) addDuration(base time.Time, amountStr, unit string) time.Time {
	amount, _ := strconv.Atoi(amountStr)
	switch {
	case strings.HasPrefix(unit, "day"):
		return base.AddDate(0, 0, amount)
	case strings.HasPrefix(unit, "week"):
		return base.AddDate(0, 0, amount*7)
	default:
		return base.AddDate(0, amount, 0)
	}
}

// parseAbsolute tries the layout list against a normalized copy of the
// input. Month names are title-cased first so "march 15th" parses.
func (r *Resolver) parseAbsolute(dateExpr string, base time.Time) (time.Time, bool) {
	candidate := strings.TrimSpace(dateExpr)
	candidate = ordinalRe.ReplaceAllString(candidate, "$1")
	candidate = titleCaser.String(candidate)

	for _, layout := range absoluteLayouts {
		parsed, err := time.Parse(layout, candidate)
		if err != nil {
			continue
		}
		year := parsed.Year()
		if year == 0 {
			year = base.Year()
		}
		return time.Date(year, parsed.Month(), parsed.Day(),
			parsed.Hour(), parsed.Minute(), 0, 0, r.location), true
	}
	return time.Time{}, false
}

// StartOfDay returns midnight of the given day in the resolver's timezone.
func (r *Resolver) StartOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// EndOfDay returns 23:59:59 of the given day in the resolver's timezone.
func (r *Resolver) EndOfDay(t time.Time) time.Time {
	return r.StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
