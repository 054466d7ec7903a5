package model

import "time"

// ExecutionResult is produced fresh by every executor call.
//
// Invariants: NeedsConfirmation implies at least two MultipleMatches
// and no resolved Event; a successful create or move always carries an
// Event with absolute start/end.
type ExecutionResult struct {
	Success           bool             `json:"success"`
	Message           string           `json:"message"`
	Event             *EventSummary    `json:"event,omitempty"`
	MultipleMatches   []EventCandidate `json:"multiple_matches,omitempty"`
	Events            []EventCandidate `json:"events,omitempty"`
	NeedsConfirmation bool             `json:"needs_confirmation,omitempty"`
}

// PendingAction is the disambiguation state held between the turn that
// found multiple matches and the follow-up selection. Session-scoped.
type PendingAction struct {
	Action     Action
	Intent     ParsedIntent
	Candidates []EventCandidate
	CreatedAt  time.Time
}
