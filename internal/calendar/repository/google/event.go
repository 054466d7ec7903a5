package google

import (
	"context"
	"time"

	"google.golang.org/api/calendar/v3"

	repo "calendar-assistant/internal/calendar/repository"
	"calendar-assistant/internal/model"
)

// ListEvents returns the user's events between TimeMin and TimeMax,
// expanded to single instances and ordered by start time.
func (r *implRepository) ListEvents(ctx context.Context, userID string, opt repo.ListEventsOptions) ([]model.CalendarEvent, error) {
	svc, err := r.service(ctx, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}

	result, err := svc.Events.List(defaultCalendarID).
		ShowDeleted(false).
		SingleEvents(true).
		TimeMin(opt.TimeMin.Format(time.RFC3339)).
		TimeMax(opt.TimeMax.Format(time.RFC3339)).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}

	events := make([]model.CalendarEvent, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, newCalendarEvent(item))
	}
	return events, nil
}

// GetEvent fetches a single event by ID.
func (r *implRepository) GetEvent(ctx context.Context, userID, eventID string) (model.CalendarEvent, error) {
	svc, err := r.service(ctx, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetEvent"), err)
		return model.CalendarEvent{}, repo.ErrFailedToGet
	}

	item, err := svc.Events.Get(defaultCalendarID, eventID).Context(ctx).Do()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetEvent"), err)
		return model.CalendarEvent{}, repo.ErrFailedToGet
	}
	return newCalendarEvent(item), nil
}

// InsertEvent creates a timed event on the user's primary calendar.
func (r *implRepository) InsertEvent(ctx context.Context, userID string, opt repo.InsertEventOptions) (model.CalendarEvent, error) {
	svc, err := r.service(ctx, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertEvent"), err)
		return model.CalendarEvent{}, repo.ErrFailedToInsert
	}

	body := &calendar.Event{
		Summary: opt.Title,
		Start:   eventDateTime(opt.Start, opt.Timezone),
		End:     eventDateTime(opt.End, opt.Timezone),
	}
	created, err := svc.Events.Insert(defaultCalendarID, body).Context(ctx).Do()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertEvent"), err)
		return model.CalendarEvent{}, repo.ErrFailedToInsert
	}
	return newCalendarEvent(created), nil
}

// UpdateEventTime reschedules an event. Patch touches only the start
// and end fields, so title, attendees and the rest survive untouched.
func (r *implRepository) UpdateEventTime(ctx context.Context, userID, eventID string, opt repo.UpdateEventTimeOptions) (model.CalendarEvent, error) {
	svc, err := r.service(ctx, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEventTime"), err)
		return model.CalendarEvent{}, repo.ErrFailedToUpdate
	}

	body := &calendar.Event{
		Start: eventDateTime(opt.Start, opt.Timezone),
		End:   eventDateTime(opt.End, opt.Timezone),
	}
	updated, err := svc.Events.Patch(defaultCalendarID, eventID, body).Context(ctx).Do()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEventTime"), err)
		return model.CalendarEvent{}, repo.ErrFailedToUpdate
	}
	return newCalendarEvent(updated), nil
}

// DeleteEvent removes an event by ID.
func (r *implRepository) DeleteEvent(ctx context.Context, userID, eventID string) error {
	svc, err := r.service(ctx, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}

	if err := svc.Events.Delete(defaultCalendarID, eventID).Context(ctx).Do(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// Timezone returns the calendar's IANA timezone setting.
func (r *implRepository) Timezone(ctx context.Context, userID string) (string, error) {
	svc, err := r.service(ctx, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Timezone"), err)
		return "", repo.ErrFailedToGetTimezone
	}

	setting, err := svc.Settings.Get("timezone").Context(ctx).Do()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Timezone"), err)
		return "", repo.ErrFailedToGetTimezone
	}
	return setting.Value, nil
}

// newCalendarEvent maps an API event to the internal model. Timed
// events carry dateTime, all-day events only date; keeping whichever
// is set preserves the all-day distinction downstream.
func newCalendarEvent(item *calendar.Event) model.CalendarEvent {
	e := model.CalendarEvent{
		ID:       item.Id,
		Title:    item.Summary,
		Location: item.Location,
		HTMLLink: item.HtmlLink,
	}
	if item.Start != nil {
		e.Start = item.Start.DateTime
		if e.Start == "" {
			e.Start = item.Start.Date
		}
	}
	if item.End != nil {
		e.End = item.End.DateTime
		if e.End == "" {
			e.End = item.End.Date
		}
	}
	return e
}

// eventDateTime builds a start/end payload from a local wall-clock
// value and the calendar's timezone name. The offset-free layout lets
// the API resolve the instant in that timezone.
func eventDateTime(t time.Time, timezone string) *calendar.EventDateTime {
	return &calendar.EventDateTime{
		DateTime: t.Format(repo.DateTimeLayout),
		TimeZone: timezone,
	}
}
