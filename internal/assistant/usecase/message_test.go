package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/calendar"
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

// Mock parser for testing
type mockParser struct {
	intent model.ParsedIntent
	err    error
	calls  int
}

func (m *mockParser) Parse(ctx context.Context, message string, now time.Time) (model.ParsedIntent, error) {
	m.calls++
	return m.intent, m.err
}

// Mock calendar use case for testing
type mockCalendar struct {
	executeFn func(intent model.ParsedIntent) model.ExecutionResult
	executed  []model.ParsedIntent
}

func (m *mockCalendar) Execute(ctx context.Context, sc model.Scope, intent model.ParsedIntent) model.ExecutionResult {
	m.executed = append(m.executed, intent)
	if m.executeFn != nil {
		return m.executeFn(intent)
	}
	return model.ExecutionResult{Success: true, Message: "ok"}
}

func (m *mockCalendar) Search(ctx context.Context, sc model.Scope, input calendar.SearchInput) []model.EventCandidate {
	return nil
}

func (m *mockCalendar) EventsInRange(ctx context.Context, sc model.Scope, input calendar.RangeInput) []calendar.EventView {
	return nil
}

func newTestUseCase(cal *mockCalendar, parser *mockParser) *implUseCase {
	uc := New(cal, parser, &mockLogger{}, time.Minute)
	uc.now = func() time.Time {
		return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	}
	return uc
}

func twoCandidates() []model.EventCandidate {
	return []model.EventCandidate{
		{ID: "ev-1", Title: "Meeting with John", Start: "2026-03-02T15:00:00-08:00", TimeDisplay: "3:00 PM - 4:00 PM"},
		{ID: "ev-2", Title: "Meeting with Sarah", Start: "2026-03-02T16:00:00-08:00", TimeDisplay: "4:00 PM - 5:00 PM"},
	}
}

func handle(t *testing.T, uc *implUseCase, sc model.Scope, message string) (assistant.HandleMessageOutput, error) {
	t.Helper()
	return uc.HandleMessage(context.Background(), sc, assistant.HandleMessageInput{Message: message})
}

func TestHandleMessage_Validation(t *testing.T) {
	sc := model.Scope{UserID: "u1", SessionID: "s1"}

	t.Run("empty message", func(t *testing.T) {
		uc := newTestUseCase(&mockCalendar{}, &mockParser{})
		_, err := handle(t, uc, sc, "   ")
		if !errors.Is(err, assistant.ErrEmptyMessage) {
			t.Fatalf("err = %v, want ErrEmptyMessage", err)
		}
	})

	t.Run("message too long", func(t *testing.T) {
		uc := newTestUseCase(&mockCalendar{}, &mockParser{})
		_, err := handle(t, uc, sc, strings.Repeat("a", 501))
		if !errors.Is(err, assistant.ErrMessageTooLong) {
			t.Fatalf("err = %v, want ErrMessageTooLong", err)
		}
	})

	t.Run("message at limit passes", func(t *testing.T) {
		parser := &mockParser{intent: model.ParsedIntent{Action: model.ActionList}}
		uc := newTestUseCase(&mockCalendar{}, parser)
		if _, err := handle(t, uc, sc, strings.Repeat("a", 500)); err != nil {
			t.Fatalf("HandleMessage() error = %v", err)
		}
		if parser.calls != 1 {
			t.Errorf("parser calls = %d, want 1", parser.calls)
		}
	})

	t.Run("multibyte runes counted not bytes", func(t *testing.T) {
		parser := &mockParser{intent: model.ParsedIntent{Action: model.ActionList}}
		uc := newTestUseCase(&mockCalendar{}, parser)
		if _, err := handle(t, uc, sc, strings.Repeat("ü", 500)); err != nil {
			t.Fatalf("HandleMessage() error = %v", err)
		}
	})
}

func TestHandleMessage_ParseFailure(t *testing.T) {
	sc := model.Scope{UserID: "u1", SessionID: "s1"}
	parser := &mockParser{err: errors.New("model returned prose")}
	cal := &mockCalendar{}
	uc := newTestUseCase(cal, parser)

	_, err := handle(t, uc, sc, "do something weird")
	if !errors.Is(err, assistant.ErrParseFailed) {
		t.Fatalf("err = %v, want ErrParseFailed", err)
	}
	if len(cal.executed) != 0 {
		t.Errorf("calendar executed %d times, want 0", len(cal.executed))
	}
}

func TestHandleMessage_ExecutesParsedIntent(t *testing.T) {
	sc := model.Scope{UserID: "u1", SessionID: "s1"}
	parser := &mockParser{intent: model.ParsedIntent{
		Action: model.ActionCreate,
		Title:  "Dentist",
		Date:   "2026-03-02",
		Time:   "15:00",
	}}
	cal := &mockCalendar{executeFn: func(intent model.ParsedIntent) model.ExecutionResult {
		return model.ExecutionResult{
			Success: true,
			Event:   &model.EventSummary{ID: "ev-9", Title: "Dentist", Start: "2026-03-02T15:00:00-08:00"},
		}
	}}
	uc := newTestUseCase(cal, parser)

	out, err := handle(t, uc, sc, "dentist tomorrow at 3pm")
	if err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if len(cal.executed) != 1 {
		t.Fatalf("calendar executed %d times, want 1", len(cal.executed))
	}
	if cal.executed[0].EventID != "" {
		t.Errorf("fresh command carried event id %q", cal.executed[0].EventID)
	}
	want := "✓ Done! 'Dentist' scheduled for March 2nd, 2026 at 3:00 PM"
	if out.Message != want {
		t.Errorf("Message = %q, want %q", out.Message, want)
	}
	if !out.Result.Success {
		t.Error("Result.Success = false, want true")
	}
}

func TestHandleMessage_ConfirmationFlow(t *testing.T) {
	sc := model.Scope{UserID: "u1", SessionID: "s1"}

	ambiguous := func(intent model.ParsedIntent) model.ExecutionResult {
		if intent.EventID != "" {
			return model.ExecutionResult{Success: true, Message: "Event deleted successfully"}
		}
		return model.ExecutionResult{
			Message:           "Multiple matches",
			MultipleMatches:   twoCandidates(),
			NeedsConfirmation: true,
		}
	}

	t.Run("valid selection executes parked action", func(t *testing.T) {
		parser := &mockParser{intent: model.ParsedIntent{Action: model.ActionDelete, Title: "meeting"}}
		cal := &mockCalendar{executeFn: ambiguous}
		uc := newTestUseCase(cal, parser)

		out, err := handle(t, uc, sc, "delete my meeting")
		if err != nil {
			t.Fatalf("first turn error = %v", err)
		}
		if !strings.Contains(out.Message, "I found multiple matches") {
			t.Fatalf("first turn Message = %q, want disambiguation prompt", out.Message)
		}
		if !strings.Contains(out.Message, "1. Meeting with John (3:00 PM - 4:00 PM)") {
			t.Errorf("prompt missing numbered candidate: %q", out.Message)
		}

		out, err = handle(t, uc, sc, "2")
		if err != nil {
			t.Fatalf("selection turn error = %v", err)
		}
		if len(cal.executed) != 2 {
			t.Fatalf("calendar executed %d times, want 2", len(cal.executed))
		}
		if got := cal.executed[1].EventID; got != "ev-2" {
			t.Errorf("selection executed event %q, want ev-2", got)
		}
		if cal.executed[1].Action != model.ActionDelete {
			t.Errorf("selection executed action %q, want delete", cal.executed[1].Action)
		}
		if !strings.Contains(out.Message, "has been cancelled") {
			t.Errorf("selection turn Message = %q, want cancellation reply", out.Message)
		}
		if parser.calls != 1 {
			t.Errorf("parser calls = %d, want 1 (selection must not reparse)", parser.calls)
		}

		// State is cleared: the same digit now parses as a fresh command.
		parser.intent = model.ParsedIntent{Action: model.ActionList}
		if _, err := handle(t, uc, sc, "1"); err != nil {
			t.Fatalf("post-selection turn error = %v", err)
		}
		if parser.calls != 2 {
			t.Errorf("parser calls = %d, want 2 (cleared state must reparse)", parser.calls)
		}
	})

	t.Run("out of range selection keeps state", func(t *testing.T) {
		parser := &mockParser{intent: model.ParsedIntent{Action: model.ActionDelete, Title: "meeting"}}
		cal := &mockCalendar{executeFn: ambiguous}
		uc := newTestUseCase(cal, parser)

		if _, err := handle(t, uc, sc, "delete my meeting"); err != nil {
			t.Fatalf("first turn error = %v", err)
		}

		_, err := handle(t, uc, sc, "9")
		var sel assistant.InvalidSelectionError
		if !errors.As(err, &sel) {
			t.Fatalf("err = %v, want InvalidSelectionError", err)
		}
		if sel.Max != 2 {
			t.Errorf("InvalidSelectionError.Max = %d, want 2", sel.Max)
		}

		// The prompt is still answerable.
		out, err := handle(t, uc, sc, "1")
		if err != nil {
			t.Fatalf("retry selection error = %v", err)
		}
		if got := cal.executed[len(cal.executed)-1].EventID; got != "ev-1" {
			t.Errorf("retry executed event %q, want ev-1", got)
		}
		if !out.Result.Success {
			t.Error("retry Result.Success = false, want true")
		}
	})

	t.Run("new command cancels pending state", func(t *testing.T) {
		parser := &mockParser{intent: model.ParsedIntent{Action: model.ActionDelete, Title: "meeting"}}
		cal := &mockCalendar{executeFn: ambiguous}
		uc := newTestUseCase(cal, parser)

		if _, err := handle(t, uc, sc, "delete my meeting"); err != nil {
			t.Fatalf("first turn error = %v", err)
		}

		parser.intent = model.ParsedIntent{Action: model.ActionList, Date: "2026-03-01"}
		cal.executeFn = func(intent model.ParsedIntent) model.ExecutionResult {
			return model.ExecutionResult{Success: true, Events: []model.EventCandidate{}}
		}
		if _, err := handle(t, uc, sc, "what do I have today instead"); err != nil {
			t.Fatalf("second turn error = %v", err)
		}
		if parser.calls != 2 {
			t.Fatalf("parser calls = %d, want 2", parser.calls)
		}
		if got := cal.executed[1].EventID; got != "" {
			t.Errorf("fresh command carried event id %q", got)
		}

		// Pending state is gone: a digit is now a fresh command too.
		if _, err := handle(t, uc, sc, "1"); err != nil {
			t.Fatalf("third turn error = %v", err)
		}
		if parser.calls != 3 {
			t.Errorf("parser calls = %d, want 3", parser.calls)
		}
	})

	t.Run("sessions do not share pending state", func(t *testing.T) {
		parser := &mockParser{intent: model.ParsedIntent{Action: model.ActionDelete, Title: "meeting"}}
		cal := &mockCalendar{executeFn: ambiguous}
		uc := newTestUseCase(cal, parser)

		if _, err := handle(t, uc, sc, "delete my meeting"); err != nil {
			t.Fatalf("first turn error = %v", err)
		}

		other := model.Scope{UserID: "u2", SessionID: "s2"}
		parser.intent = model.ParsedIntent{Action: model.ActionList}
		if _, err := handle(t, uc, other, "2"); err != nil {
			t.Fatalf("other session turn error = %v", err)
		}
		if got := cal.executed[len(cal.executed)-1].EventID; got != "" {
			t.Errorf("other session resolved a selection it never saw: event %q", got)
		}
	})
}

func TestHandleMessage_SelectionWithoutPendingIsParsed(t *testing.T) {
	sc := model.Scope{UserID: "u1", SessionID: "s1"}
	parser := &mockParser{intent: model.ParsedIntent{Action: model.ActionList}}
	cal := &mockCalendar{}
	uc := newTestUseCase(cal, parser)

	if _, err := handle(t, uc, sc, "2"); err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if parser.calls != 1 {
		t.Errorf("parser calls = %d, want 1", parser.calls)
	}
}
