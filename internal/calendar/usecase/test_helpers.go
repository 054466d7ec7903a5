package usecase

import (
	"context"
	"testing"
	"time"

	repo "calendar-assistant/internal/calendar/repository"
	"calendar-assistant/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock event store for testing
type mockRepository struct {
	events  []model.CalendarEvent
	listErr error
	lists   []repo.ListEventsOptions

	event  model.CalendarEvent
	getErr error

	insertOut model.CalendarEvent
	insertErr error
	inserted  []repo.InsertEventOptions

	updateOut  model.CalendarEvent
	updateErr  error
	updatedIDs []string
	updates    []repo.UpdateEventTimeOptions

	deletes   []string
	deleteErr error

	tz    string
	tzErr error
}

func (m *mockRepository) ListEvents(ctx context.Context, userID string, opt repo.ListEventsOptions) ([]model.CalendarEvent, error) {
	m.lists = append(m.lists, opt)
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

func (m *mockRepository) GetEvent(ctx context.Context, userID, eventID string) (model.CalendarEvent, error) {
	return m.event, m.getErr
}

func (m *mockRepository) InsertEvent(ctx context.Context, userID string, opt repo.InsertEventOptions) (model.CalendarEvent, error) {
	m.inserted = append(m.inserted, opt)
	if m.insertErr != nil {
		return model.CalendarEvent{}, m.insertErr
	}
	if m.insertOut.ID != "" {
		return m.insertOut, nil
	}
	return model.CalendarEvent{
		ID:    "ev-created",
		Title: opt.Title,
		Start: opt.Start.Format(time.RFC3339),
		End:   opt.End.Format(time.RFC3339),
	}, nil
}

func (m *mockRepository) UpdateEventTime(ctx context.Context, userID, eventID string, opt repo.UpdateEventTimeOptions) (model.CalendarEvent, error) {
	m.updatedIDs = append(m.updatedIDs, eventID)
	m.updates = append(m.updates, opt)
	if m.updateErr != nil {
		return model.CalendarEvent{}, m.updateErr
	}
	if m.updateOut.ID != "" {
		return m.updateOut, nil
	}
	return model.CalendarEvent{
		ID:    eventID,
		Title: m.event.Title,
		Start: opt.Start.Format(time.RFC3339),
		End:   opt.End.Format(time.RFC3339),
	}, nil
}

func (m *mockRepository) DeleteEvent(ctx context.Context, userID, eventID string) error {
	m.deletes = append(m.deletes, eventID)
	return m.deleteErr
}

func (m *mockRepository) Timezone(ctx context.Context, userID string) (string, error) {
	if m.tzErr != nil {
		return "", m.tzErr
	}
	if m.tz == "" {
		return testTimezone, nil
	}
	return m.tz, nil
}

const testTimezone = "America/Los_Angeles"

// testScope is the caller every test acts as.
var testScope = model.Scope{UserID: "u1", SessionID: "s1"}

// newTestUseCase pins the clock to Sunday 2026-03-01 10:00 Pacific.
// All fixture dates stay before the March 8th DST switch.
func newTestUseCase(t *testing.T, repo *mockRepository) (*implUseCase, *time.Location) {
	t.Helper()

	loc, err := time.LoadLocation(testTimezone)
	if err != nil {
		t.Fatalf("loading %s: %v", testTimezone, err)
	}
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, loc)

	uc := New(repo, &mockLogger{}, "UTC")
	uc.now = func() time.Time { return now }
	return uc, loc
}
