package usecase

import (
	"context"
	"time"

	"calendar-assistant/internal/calendar"
	repo "calendar-assistant/internal/calendar/repository"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/timeparse"
)

// Search finds candidate events for delete and move. A dated search
// covers that local day; an undated one covers the next 30 days. The
// time filter is exact: "3pm" never matches a 3:05pm event, and
// all-day events are skipped entirely when a time is given.
func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, input calendar.SearchInput) []model.EventCandidate {
	r, _ := uc.resolver(ctx, sc.UserID)

	events, err := uc.fetchWindow(ctx, sc.UserID, r, input.Date, searchWindowDays)
	if err != nil {
		uc.l.Errorf(ctx, "Search: listing events: %v", err)
		return []model.EventCandidate{}
	}

	hour, minute, filterTime := timeparse.ParseClock(input.Time)

	candidates := make([]model.EventCandidate, 0, len(events))
	for _, e := range events {
		if input.Title != "" && !titleMatches(input.Title, e.Title) {
			continue
		}
		if filterTime && !startsAtClock(e, r.Location(), hour, minute) {
			continue
		}
		candidates = append(candidates, newCandidate(e))
	}
	return candidates
}

// fetchWindow lists the events of one local day when a date expression
// is given, otherwise the next fallbackDays days from now.
func (uc *implUseCase) fetchWindow(ctx context.Context, userID string, r *timeparse.Resolver, dateExpr string, fallbackDays int) ([]model.CalendarEvent, error) {
	var timeMin, timeMax time.Time
	if dateExpr != "" {
		day := r.ResolveDate(dateExpr, uc.now())
		timeMin, timeMax = day, r.EndOfDay(day)
	} else {
		timeMin = uc.now().In(r.Location())
		timeMax = timeMin.AddDate(0, 0, fallbackDays)
	}

	return uc.repo.ListEvents(ctx, userID, repo.ListEventsOptions{
		TimeMin: timeMin,
		TimeMax: timeMax,
	})
}
