package usecase

import (
	"context"

	"calendar-assistant/internal/calendar"
	repo "calendar-assistant/internal/calendar/repository"
	"calendar-assistant/internal/model"
)

// EventsInRange lists every event in an absolute window for the grid
// view. Remote failures degrade to an empty grid rather than erroring
// the whole page.
func (uc *implUseCase) EventsInRange(ctx context.Context, sc model.Scope, input calendar.RangeInput) []calendar.EventView {
	events, err := uc.repo.ListEvents(ctx, sc.UserID, repo.ListEventsOptions{
		TimeMin: input.Start,
		TimeMax: input.End,
	})
	if err != nil {
		uc.l.Errorf(ctx, "EventsInRange: listing events: %v", err)
		return []calendar.EventView{}
	}

	views := make([]calendar.EventView, 0, len(events))
	for _, e := range events {
		title := e.Title
		if title == "" {
			title = untitledDisplay
		}
		views = append(views, calendar.EventView{
			ID:     e.ID,
			Title:  title,
			Start:  e.Start,
			End:    e.End,
			AllDay: e.AllDay(),
		})
	}
	return views
}
