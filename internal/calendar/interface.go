package calendar

import (
	"context"

	"calendar-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Execute runs a parsed intent against the user's calendar. Calendar
	// failures are folded into the result, never returned as an error,
	// so one reply surface handles both outcomes.
	Execute(ctx context.Context, sc model.Scope, intent model.ParsedIntent) model.ExecutionResult

	// Search finds candidate events by fuzzy title, date and exact start
	// time. Remote errors degrade to an empty list.
	Search(ctx context.Context, sc model.Scope, input SearchInput) []model.EventCandidate

	// EventsInRange returns every event between two instants for the
	// calendar grid view. Remote errors degrade to an empty list.
	EventsInRange(ctx context.Context, sc model.Scope, input RangeInput) []EventView
}
