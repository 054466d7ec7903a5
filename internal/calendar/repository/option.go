package repository

import "time"

// DateTimeLayout is the wire layout for event start/end payloads: a
// local wall-clock value with no offset. The store pairs it with an
// IANA timezone name so events land at the correct local time.
const DateTimeLayout = "2006-01-02T15:04:05"

// ListEventsOptions bounds a listing to an absolute window. Recurring
// events are always expanded to single instances, ordered by start.
type ListEventsOptions struct {
	TimeMin time.Time
	TimeMax time.Time
}

// InsertEventOptions holds parameters for creating a new event.
type InsertEventOptions struct {
	Title    string
	Start    time.Time
	End      time.Time
	Timezone string
}

// UpdateEventTimeOptions reschedules an existing event. Only the times
// change; every other field of the event is preserved.
type UpdateEventTimeOptions struct {
	Start    time.Time
	End      time.Time
	Timezone string
}
