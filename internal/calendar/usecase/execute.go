package usecase

import (
	"context"
	"fmt"

	"calendar-assistant/internal/model"
)

// Execute dispatches a parsed intent to its action. Every path yields
// an ExecutionResult; calendar failures fold into it so the caller has
// a single surface to turn into a reply.
func (uc *implUseCase) Execute(ctx context.Context, sc model.Scope, intent model.ParsedIntent) model.ExecutionResult {
	switch intent.Action {
	case model.ActionCreate:
		return uc.create(ctx, sc, intent)
	case model.ActionDelete:
		return uc.delete(ctx, sc, intent)
	case model.ActionMove:
		return uc.move(ctx, sc, intent)
	case model.ActionList:
		return uc.list(ctx, sc, intent)
	default:
		uc.l.Warnf(ctx, "Execute: unknown action %q from parser", intent.Action)
		return model.ExecutionResult{
			Message: fmt.Sprintf("Unknown action: %s", intent.Action),
		}
	}
}

// noMatchMessage distinguishes a timed miss from a general one, so the
// reply can say what was searched for.
func noMatchMessage(intent model.ParsedIntent) string {
	if intent.Time == "" {
		return "No matching events found"
	}
	msg := fmt.Sprintf("No events found at %s", intent.Time)
	if intent.Date != "" {
		msg += fmt.Sprintf(" on %s", intent.Date)
	}
	return msg
}

// multipleMatchesResult asks the user to pick one candidate. Nothing
// has been mutated at this point.
func multipleMatchesResult(matches []model.EventCandidate) model.ExecutionResult {
	return model.ExecutionResult{
		Message:           fmt.Sprintf("Found %d matching events. Please specify which one:", len(matches)),
		MultipleMatches:   matches,
		NeedsConfirmation: true,
	}
}
