package usecase

import (
	"context"
	"fmt"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/timeparse"
)

// list builds an agenda. A dated request covers that local day, an
// undated one the next 7 days. An empty agenda is still a success:
// having nothing scheduled is an answer, not an error.
func (uc *implUseCase) list(ctx context.Context, sc model.Scope, intent model.ParsedIntent) model.ExecutionResult {
	r, _ := uc.resolver(ctx, sc.UserID)

	events, err := uc.fetchWindow(ctx, sc.UserID, r, intent.Date, listWindowDays)
	if err != nil {
		uc.l.Errorf(ctx, "list: listing events: %v", err)
		return model.ExecutionResult{
			Message: fmt.Sprintf("Error fetching events: %v", err),
			Events:  []model.EventCandidate{},
		}
	}

	hour, minute, filterTime := timeparse.ParseClock(intent.Time)

	entries := make([]model.EventCandidate, 0, len(events))
	for _, e := range events {
		if filterTime && !startsAtClock(e, r.Location(), hour, minute) {
			continue
		}
		entry := newCandidate(e)
		entry.Location = e.Location
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return model.ExecutionResult{
			Success: true,
			Message: noEventsMessage(intent),
			Events:  entries,
		}
	}

	return model.ExecutionResult{
		Success: true,
		Message: fmt.Sprintf("Found %d event(s)", len(entries)),
		Events:  entries,
	}
}

func noEventsMessage(intent model.ParsedIntent) string {
	if intent.Time != "" {
		msg := fmt.Sprintf("No events found at %s", intent.Time)
		if intent.Date != "" {
			msg += fmt.Sprintf(" on %s", intent.Date)
		}
		return msg
	}

	window := intent.Date
	if window == "" {
		window = "the next 7 days"
	}
	return fmt.Sprintf("No events found for %s", window)
}
