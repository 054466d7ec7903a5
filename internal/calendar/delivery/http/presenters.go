package http

import "calendar-assistant/internal/calendar"

// --- Response DTOs ---

// eventsResp is the grid contract: raw timestamps plus an allDay flag,
// ready for the client calendar component.
type eventsResp struct {
	Success bool                 `json:"success"`
	Events  []calendar.EventView `json:"events"`
}

// errorResp is the flat error body the frontend expects.
type errorResp struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
