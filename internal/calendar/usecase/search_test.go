package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
)

func TestSearch_FuzzyTitle(t *testing.T) {
	repo := &mockRepository{events: []model.CalendarEvent{
		{ID: "ev-1", Title: "Daily Standup", Start: "2026-03-02T09:00:00-08:00", End: "2026-03-02T09:15:00-08:00"},
		{ID: "ev-2", Title: "Team Meeting", Start: "2026-03-02T15:00:00-08:00", End: "2026-03-02T16:00:00-08:00"},
	}}
	uc, _ := newTestUseCase(t, repo)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "partial word finds full title", query: "standup", wantIDs: []string{"ev-1"}},
		{name: "plural query finds singular title", query: "meetings", wantIDs: []string{"ev-2"}},
		{name: "extra query words do not block", query: "team meeting tomorrow", wantIDs: []string{"ev-2"}},
		{name: "no overlap matches nothing", query: "dentist", wantIDs: []string{}},
		{name: "empty query matches everything", query: "", wantIDs: []string{"ev-1", "ev-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uc.Search(context.Background(), testScope, calendar.SearchInput{Title: tt.query})
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Search(%q) returned %d candidates, want %d", tt.query, len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("candidate[%d].ID = %q, want %q", i, got[i].ID, want)
				}
			}
		})
	}
}

func TestSearch_TimeFilter(t *testing.T) {
	repo := &mockRepository{events: []model.CalendarEvent{
		{ID: "ev-1", Title: "Retro", Start: "2026-03-02T15:00:00-08:00", End: "2026-03-02T16:00:00-08:00"},
		{ID: "ev-2", Title: "Retro Prep", Start: "2026-03-02T15:05:00-08:00", End: "2026-03-02T15:30:00-08:00"},
		{ID: "ev-3", Title: "Retro Day", Start: "2026-03-02", End: "2026-03-03"},
	}}
	uc, _ := newTestUseCase(t, repo)

	// An exact clock match: 15:05 and the clockless all-day event miss.
	got := uc.Search(context.Background(), testScope, calendar.SearchInput{Title: "retro", Time: "3pm"})
	if len(got) != 1 {
		t.Fatalf("Search() returned %d candidates, want 1: %+v", len(got), got)
	}
	if got[0].ID != "ev-1" {
		t.Errorf("candidate.ID = %q, want ev-1", got[0].ID)
	}
}

func TestSearch_Window(t *testing.T) {
	t.Run("dated search covers that local day", func(t *testing.T) {
		repo := &mockRepository{}
		uc, loc := newTestUseCase(t, repo)

		uc.Search(context.Background(), testScope, calendar.SearchInput{Title: "x", Date: "tomorrow"})

		if len(repo.lists) != 1 {
			t.Fatalf("ListEvents calls = %d, want 1", len(repo.lists))
		}
		wantMin := time.Date(2026, time.March, 2, 0, 0, 0, 0, loc)
		wantMax := wantMin.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		if !repo.lists[0].TimeMin.Equal(wantMin) {
			t.Errorf("TimeMin = %v, want %v", repo.lists[0].TimeMin, wantMin)
		}
		if !repo.lists[0].TimeMax.Equal(wantMax) {
			t.Errorf("TimeMax = %v, want %v", repo.lists[0].TimeMax, wantMax)
		}
	})

	t.Run("undated search covers the next 30 days", func(t *testing.T) {
		repo := &mockRepository{}
		uc, loc := newTestUseCase(t, repo)

		uc.Search(context.Background(), testScope, calendar.SearchInput{Title: "x"})

		wantMin := time.Date(2026, time.March, 1, 10, 0, 0, 0, loc)
		if !repo.lists[0].TimeMin.Equal(wantMin) {
			t.Errorf("TimeMin = %v, want %v", repo.lists[0].TimeMin, wantMin)
		}
		if !repo.lists[0].TimeMax.Equal(wantMin.AddDate(0, 0, 30)) {
			t.Errorf("TimeMax = %v, want 30 days out", repo.lists[0].TimeMax)
		}
	})
}

func TestSearch_RemoteFailure(t *testing.T) {
	repo := &mockRepository{listErr: errors.New("googleapi: 503")}
	uc, _ := newTestUseCase(t, repo)

	got := uc.Search(context.Background(), testScope, calendar.SearchInput{Title: "retro"})
	if got == nil {
		t.Fatal("Search() = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Search() returned %d candidates, want 0", len(got))
	}
}
