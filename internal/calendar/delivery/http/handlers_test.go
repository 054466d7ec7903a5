package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/scope"
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

// Mock calendar use case for testing
type mockUseCase struct {
	views     []calendar.EventView
	lastInput calendar.RangeInput
	calls     int
}

func (m *mockUseCase) Execute(ctx context.Context, sc model.Scope, intent model.ParsedIntent) model.ExecutionResult {
	return model.ExecutionResult{}
}

func (m *mockUseCase) Search(ctx context.Context, sc model.Scope, input calendar.SearchInput) []model.EventCandidate {
	return nil
}

func (m *mockUseCase) EventsInRange(ctx context.Context, sc model.Scope, input calendar.RangeInput) []calendar.EventView {
	m.calls++
	m.lastInput = input
	if m.views == nil {
		return []calendar.EventView{}
	}
	return m.views
}

func newTestRouter(t *testing.T, uc calendar.UseCase) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := scope.NewManager("test-secret", time.Hour)
	token, err := jwtManager.Generate(scope.Payload{UserID: "u1", SessionID: "s1"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(&mockLogger{}, uc), middleware.New(&mockLogger{}, jwtManager))
	return r, token
}

func getEvents(r *gin.Engine, token, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar/events"+query, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: scope.CookieName, Value: token})
	}
	r.ServeHTTP(w, req)
	return w
}

func TestEvents(t *testing.T) {
	t.Run("explicit window", func(t *testing.T) {
		uc := &mockUseCase{views: []calendar.EventView{
			{ID: "e1", Title: "Standup", Start: "2026-03-02T09:00:00-08:00", End: "2026-03-02T09:15:00-08:00"},
			{ID: "e2", Title: "Conference", Start: "2026-03-03", End: "2026-03-04", AllDay: true},
		}}
		r, token := newTestRouter(t, uc)

		w := getEvents(r, token, "?start=2026-03-01T00:00:00Z&end=2026-03-31T23:59:59Z")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Success bool                 `json:"success"`
			Events  []calendar.EventView `json:"events"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if !resp.Success || len(resp.Events) != 2 {
			t.Fatalf("resp = %+v", resp)
		}
		if !resp.Events[1].AllDay {
			t.Error("all-day flag lost in transit")
		}

		wantStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		if !uc.lastInput.Start.Equal(wantStart) {
			t.Errorf("Start = %v, want %v", uc.lastInput.Start, wantStart)
		}
	})

	t.Run("defaults to current month window", func(t *testing.T) {
		uc := &mockUseCase{}
		r, token := newTestRouter(t, uc)

		w := getEvents(r, token, "")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		if uc.calls != 1 {
			t.Fatalf("EventsInRange calls = %d, want 1", uc.calls)
		}

		now := time.Now()
		wantStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		if !uc.lastInput.Start.Equal(wantStart) {
			t.Errorf("Start = %v, want %v", uc.lastInput.Start, wantStart)
		}
		if got := uc.lastInput.End.Sub(uc.lastInput.Start); got != 60*24*time.Hour {
			t.Errorf("window = %v, want 1440h", got)
		}
	})

	t.Run("empty window returns empty array", func(t *testing.T) {
		r, token := newTestRouter(t, &mockUseCase{})

		w := getEvents(r, token, "?start=2026-03-01&end=2026-03-02")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"events":[]`) {
			t.Errorf("body = %s, want empty events array", w.Body.String())
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		r, token := newTestRouter(t, &mockUseCase{})

		w := getEvents(r, token, "?start=2026-03-31&end=2026-03-01")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "End must be after start") {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		r, token := newTestRouter(t, &mockUseCase{})

		w := getEvents(r, token, "?start=next-tuesday&end=2026-03-31")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "Invalid date format") {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("requires authentication", func(t *testing.T) {
		r, _ := newTestRouter(t, &mockUseCase{})

		w := getEvents(r, "", "")

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}
