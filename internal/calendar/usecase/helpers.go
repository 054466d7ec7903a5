package usecase

import (
	"context"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/humantime"
	"calendar-assistant/pkg/timeparse"
)

// untitledDisplay replaces an empty event title on every display path.
// Matching always runs against the raw title, so a query for
// "untitled" never picks up events that merely lack one.
const untitledDisplay = "Untitled"

// timezone returns the user's calendar timezone, cached per user.
// Fetch failures fall back to the default without caching it, so the
// next call retries.
func (uc *implUseCase) timezone(ctx context.Context, userID string) string {
	if tz, ok := uc.timezones.Get(userID); ok {
		return tz
	}

	tz, err := uc.repo.Timezone(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "timezone: falling back to %s for user %s: %v", uc.defaultTimezone, userID, err)
		return uc.defaultTimezone
	}

	uc.timezones.Add(userID, tz)
	return tz
}

// resolver builds a time resolver in the user's timezone and returns
// the timezone name used, which is also what event payloads carry.
func (uc *implUseCase) resolver(ctx context.Context, userID string) (*timeparse.Resolver, string) {
	tz := uc.timezone(ctx, userID)

	r, err := timeparse.NewResolver(tz)
	if err != nil {
		uc.l.Warnf(ctx, "resolver: invalid timezone %q, using %s: %v", tz, uc.defaultTimezone, err)
		tz = uc.defaultTimezone
		if r, err = timeparse.NewResolver(tz); err != nil {
			tz = "UTC"
			r, _ = timeparse.NewResolver(tz)
		}
	}

	return r, tz
}

// newCandidate shapes an event for a disambiguation list or agenda.
func newCandidate(e model.CalendarEvent) model.EventCandidate {
	title := e.Title
	if title == "" {
		title = untitledDisplay
	}
	return model.EventCandidate{
		ID:          e.ID,
		Title:       title,
		Start:       e.Start,
		End:         e.End,
		TimeDisplay: humantime.FormatRange(e.Start, e.End),
	}
}
