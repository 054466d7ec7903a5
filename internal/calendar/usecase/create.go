package usecase

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	repo "calendar-assistant/internal/calendar/repository"
	"calendar-assistant/internal/model"
)

// untitledEventTitle names events created without a title.
const untitledEventTitle = "Untitled Event"

var titleCaser = cases.Title(language.English)

// create schedules a new event. A missing date means today, a missing
// time means noon, and a missing end time means one hour after start.
func (uc *implUseCase) create(ctx context.Context, sc model.Scope, intent model.ParsedIntent) model.ExecutionResult {
	r, tz := uc.resolver(ctx, sc.UserID)

	title := untitledEventTitle
	if intent.Title != "" {
		title = titleCaser.String(intent.Title)
	}

	date := intent.Date
	if date == "" {
		date = "today"
	}

	now := uc.now()
	start, end := r.Resolve(date, intent.Time, now)
	if intent.EndTime != "" {
		// The end expression resolves on the same day as the start.
		end, _ = r.Resolve(date, intent.EndTime, now)
	}

	created, err := uc.repo.InsertEvent(ctx, sc.UserID, repo.InsertEventOptions{
		Title:    title,
		Start:    start,
		End:      end,
		Timezone: tz,
	})
	if err != nil {
		uc.l.Errorf(ctx, "create: InsertEvent %q: %v", title, err)
		return model.ExecutionResult{
			Message: fmt.Sprintf("Failed to create event: %v", err),
		}
	}

	return model.ExecutionResult{
		Success: true,
		Message: fmt.Sprintf("Event %q created successfully", title),
		Event: &model.EventSummary{
			ID:    created.ID,
			Title: created.Title,
			Start: created.Start,
			End:   created.End,
			Link:  created.HTMLLink,
		},
	}
}
