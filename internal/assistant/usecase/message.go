package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/model"
)

// maxMessageRunes caps one command. Longer texts are almost always
// pasted content, not commands, and would blow the parser prompt.
const maxMessageRunes = 500

func (uc *implUseCase) HandleMessage(ctx context.Context, sc model.Scope, input assistant.HandleMessageInput) (assistant.HandleMessageOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return assistant.HandleMessageOutput{}, assistant.ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > maxMessageRunes {
		return assistant.HandleMessageOutput{}, assistant.ErrMessageTooLong
	}

	if pending, ok := uc.pending.Get(sc.SessionID); ok {
		if selection, isSelection := parseSelection(message); isSelection {
			return uc.resolveSelection(ctx, sc, pending, selection)
		}
		// Anything that isn't a selection supersedes the prompt.
		uc.pending.Remove(sc.SessionID)
	}

	parsed, err := uc.parser.Parse(ctx, message, uc.now())
	if err != nil {
		uc.l.Errorf(ctx, "assistant.HandleMessage: parsing %q: %v", message, err)
		return assistant.HandleMessageOutput{}, fmt.Errorf("%w: %v", assistant.ErrParseFailed, err)
	}
	uc.l.Debugf(ctx, "assistant.HandleMessage: parsed %q as %s", message, parsed.Action)

	result := uc.calendar.Execute(ctx, sc, parsed)

	if result.NeedsConfirmation && len(result.MultipleMatches) > 0 {
		uc.pending.Add(sc.SessionID, model.PendingAction{
			Action:     parsed.Action,
			Intent:     parsed,
			Candidates: result.MultipleMatches,
			CreatedAt:  uc.now(),
		})
	} else {
		uc.pending.Remove(sc.SessionID)
	}

	return assistant.HandleMessageOutput{
		Message: respond(parsed.Action, parsed, result),
		Result:  result,
	}, nil
}

// resolveSelection executes a parked action against the candidate the
// user picked. An out-of-range pick keeps the state parked so the user
// can answer again.
func (uc *implUseCase) resolveSelection(ctx context.Context, sc model.Scope, pending model.PendingAction, selection int) (assistant.HandleMessageOutput, error) {
	if selection < 1 || selection > len(pending.Candidates) {
		return assistant.HandleMessageOutput{}, assistant.InvalidSelectionError{Max: len(pending.Candidates)}
	}

	uc.pending.Remove(sc.SessionID)

	intent := pending.Intent
	intent.EventID = pending.Candidates[selection-1].ID
	result := uc.calendar.Execute(ctx, sc, intent)

	return assistant.HandleMessageOutput{
		Message: respond(pending.Action, pending.Intent, result),
		Result:  result,
	}, nil
}
