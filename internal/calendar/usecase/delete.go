package usecase

import (
	"context"
	"fmt"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
)

// delete removes an event. With a concrete event id (a confirmed
// selection) it deletes directly; otherwise it searches first and only
// deletes on an unambiguous single match.
func (uc *implUseCase) delete(ctx context.Context, sc model.Scope, intent model.ParsedIntent) model.ExecutionResult {
	if intent.EventID != "" {
		if err := uc.repo.DeleteEvent(ctx, sc.UserID, intent.EventID); err != nil {
			uc.l.Errorf(ctx, "delete: DeleteEvent %s: %v", intent.EventID, err)
			return model.ExecutionResult{
				Message: fmt.Sprintf("Failed to delete event: %v", err),
			}
		}
		return model.ExecutionResult{
			Success: true,
			Message: "Event deleted successfully",
		}
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
		if err := uc.repo.DeleteEvent(ctx, sc.UserID, matches[0].ID); err != nil {
			uc.l.Errorf(ctx, "delete: DeleteEvent %s: %v", matches[0].ID, err)
			return model.ExecutionResult{
				Message: fmt.Sprintf("Failed to delete event: %v", err),
			}
		}
		return model.ExecutionResult{
			Success: true,
			Message: fmt.Sprintf("Event %q deleted successfully", matches[0].Title),
		}
	default:
		return multipleMatchesResult(matches)
	}
}
