package repository

import (
	"context"

	"calendar-assistant/internal/model"
)

// Repository is the composed interface for the remote event store.
type Repository interface {
	EventStore
}

// EventStore defines all access to a user's calendar. Implementations
// authenticate per user; the userID selects whose calendar to touch.
type EventStore interface {
	ListEvents(ctx context.Context, userID string, opt ListEventsOptions) ([]model.CalendarEvent, error)
	GetEvent(ctx context.Context, userID, eventID string) (model.CalendarEvent, error)
	InsertEvent(ctx context.Context, userID string, opt InsertEventOptions) (model.CalendarEvent, error)
	UpdateEventTime(ctx context.Context, userID, eventID string, opt UpdateEventTimeOptions) (model.CalendarEvent, error)
	DeleteEvent(ctx context.Context, userID, eventID string) error

	// Timezone returns the IANA timezone of the user's calendar.
	Timezone(ctx context.Context, userID string) (string, error)
}
