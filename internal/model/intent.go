package model

// Action is the calendar operation named by a parsed intent.
type Action string

const (
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
	ActionMove   Action = "move"
	ActionList   Action = "list"
)

// ParsedIntent is the structured output of natural-language parsing.
// Date values are ISO or natural-language strings; times are 24-hour
// or meridiem strings. Everything except Action is optional.
type ParsedIntent struct {
	Action     Action  `json:"action"`
	Title      string  `json:"title,omitempty"`
	Date       string  `json:"date,omitempty"`
	Time       string  `json:"time,omitempty"`
	EndTime    string  `json:"end_time,omitempty"`
	NewDate    string  `json:"new_date,omitempty"`
	NewTime    string  `json:"new_time,omitempty"`
	NewEndTime string  `json:"new_end_time,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`

	// EventID is never produced by the language model. The confirmation
	// flow sets it when re-invoking an action with a selected candidate.
	EventID string `json:"-"`
}
