package usecase

import (
	"context"
	"fmt"

	"calendar-assistant/internal/calendar"
	repo "calendar-assistant/internal/calendar/repository"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/timeparse"
)

// move reschedules an event. With a concrete event id (a confirmed
// selection) it moves directly; otherwise it searches first and only
// moves on an unambiguous single match.
func (uc *implUseCase) move(ctx context.Context, sc model.Scope, intent model.ParsedIntent) model.ExecutionResult {
	r, tz := uc.resolver(ctx, sc.UserID)

	if intent.EventID != "" {
		result := uc.moveByID(ctx, sc.UserID, r, tz, intent, intent.EventID)
		if result.Success {
			result.Message = movedToMessage(intent)
		}
		return result
	}

	matches := uc.Search(ctx, sc, calendar.SearchInput{
		Title: intent.Title,
		Date:  intent.Date,
		Time:  intent.Time,
	})

	switch len(matches) {
	case 0:
		return model.ExecutionResult{Message: noMatchMessage(intent)}
	case 1:
		result := uc.moveByID(ctx, sc.UserID, r, tz, intent, matches[0].ID)
		if result.Success {
			result.Message = fmt.Sprintf("Event %q moved successfully", result.Event.Title)
		}
		return result
	default:
		return multipleMatchesResult(matches)
	}
}

// moveByID reschedules one event. Without an explicit new end time the
// original duration is preserved; all-day originals fall back to the
// one-hour default since they have no duration to carry over.
func (uc *implUseCase) moveByID(ctx context.Context, userID string, r *timeparse.Resolver, tz string, intent model.ParsedIntent, eventID string) model.ExecutionResult {
	event, err := uc.repo.GetEvent(ctx, userID, eventID)
	if err != nil {
		uc.l.Errorf(ctx, "move: GetEvent %s: %v", eventID, err)
		return model.ExecutionResult{
			Message: fmt.Sprintf("Failed to move event: %v", err),
		}
	}

	now := uc.now()
	newStart, newEnd := r.Resolve(intent.NewDate, intent.NewTime, now)
	if intent.NewEndTime != "" {
		newEnd, _ = r.Resolve(intent.NewDate, intent.NewEndTime, now)
	} else if start, ok := event.StartsAt(r.Location()); ok {
		if end, ok := event.EndsAt(r.Location()); ok {
			newEnd = newStart.Add(end.Sub(start))
		}
	}

	updated, err := uc.repo.UpdateEventTime(ctx, userID, eventID, repo.UpdateEventTimeOptions{
		Start:    newStart,
		End:      newEnd,
		Timezone: tz,
	})
	if err != nil {
		uc.l.Errorf(ctx, "move: UpdateEventTime %s: %v", eventID, err)
		return model.ExecutionResult{
			Message: fmt.Sprintf("Failed to move event: %v", err),
		}
	}

	return model.ExecutionResult{
		Success: true,
		Event: &model.EventSummary{
			ID:    updated.ID,
			Title: updated.Title,
			Start: updated.Start,
			End:   updated.End,
		},
	}
}

func movedToMessage(intent model.ParsedIntent) string {
	msg := fmt.Sprintf("Event moved to %s", intent.NewDate)
	if intent.NewTime != "" {
		msg += fmt.Sprintf(" at %s", intent.NewTime)
	}
	return msg
}
