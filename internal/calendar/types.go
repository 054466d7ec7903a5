package calendar

import "time"

// --- UseCase Inputs ---

// SearchInput narrows candidate events before a delete or move. All
// fields are optional; empty fields match everything.
type SearchInput struct {
	Title string
	Date  string
	Time  string
}

// RangeInput is an absolute window for the grid view.
type RangeInput struct {
	Start time.Time
	End   time.Time
}

// --- UseCase Outputs ---

// EventView is one event row for the calendar grid, raw timestamps
// preserved for the client to lay out.
type EventView struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	End    string `json:"end"`
	AllDay bool   `json:"allDay"`
}
