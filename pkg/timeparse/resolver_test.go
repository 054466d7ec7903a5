package timeparse_test

import (
	"testing"
	"time"

	"calendar-assistant/pkg/timeparse"
)

func TestNewResolver(t *testing.T) {
	_, err := timeparse.NewResolver("America/Los_Angeles")
	if err != nil {
		t.Fatalf("unexpected error creating valid resolver: %v", err)
	}

	_, err = timeparse.NewResolver("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolveDate(t *testing.T) {
	r, _ := timeparse.NewResolver("UTC")
	// Sunday, March 1, 2026
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		expr string
		want time.Time
	}{
		{"today", "today", day(2026, 3, 1)},
		{"tomorrow", "tomorrow", day(2026, 3, 2)},
		{"yesterday", "yesterday", day(2026, 2, 28)},
		{"weekday ahead in week", "friday", day(2026, 3, 6)},
		{"weekday behind in week", "monday", day(2026, 3, 2)},
		{"same weekday advances a full week", "sunday", day(2026, 3, 8)},
		{"weekday abbreviation", "fri", day(2026, 3, 6)},
		{"next weekday", "next wednesday", day(2026, 3, 4)},
		{"iso date", "2026-03-15", day(2026, 3, 15)},
		{"month name with year", "March 15, 2026", day(2026, 3, 15)},
		{"month name without year", "march 15", day(2026, 3, 15)},
		{"ordinal day", "March 15th", day(2026, 3, 15)},
		{"slash date", "3/15/2026", day(2026, 3, 15)},
		{"in days", "in 3 days", day(2026, 3, 4)},
		{"in weeks", "in 2 weeks", day(2026, 3, 15)},
		{"unparseable falls back to base date", "whenever works", day(2026, 3, 1)},
		{"empty falls back to base date", "", day(2026, 3, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ResolveDate(tt.expr, base)
			if !got.Equal(tt.want) {
				t.Errorf("ResolveDate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestWeekdaysAreStrictlyFuture(t *testing.T) {
	r, _ := timeparse.NewResolver("UTC")
	names := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	// Check from every base weekday so the same-day case is covered.
	for d := 0; d < 7; d++ {
		base := time.Date(2026, 3, 1+d, 9, 0, 0, 0, time.UTC)
		baseDay := time.Date(2026, 3, 1+d, 0, 0, 0, 0, time.UTC)
		for _, name := range names {
			got := r.ResolveDate(name, base)
			diff := got.Sub(baseDay).Hours() / 24
			if diff < 1 || diff > 7 {
				t.Errorf("base %s: %q resolved %v days ahead, want within [1,7]",
					base.Weekday(), name, diff)
			}
		}
	}
}

func TestResolve(t *testing.T) {
	r, _ := timeparse.NewResolver("UTC")
	// Sunday, March 1, 2026
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	at := func(y int, m time.Month, d, hh, mm int) time.Time {
		return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
	}

	tests := []struct {
		name      string
		dateExpr  string
		timeExpr  string
		wantStart time.Time
	}{
		{"tomorrow 3pm", "tomorrow", "3pm", at(2026, 3, 2, 15, 0)},
		{"today 24h clock", "today", "14:30", at(2026, 3, 1, 14, 30)},
		{"morning meridiem", "today", "9am", at(2026, 3, 1, 9, 0)},
		{"noon meridiem", "today", "12pm", at(2026, 3, 1, 12, 0)},
		{"midnight meridiem", "today", "12am", at(2026, 3, 1, 0, 0)},
		{"missing time defaults to noon", "tomorrow", "", at(2026, 3, 2, 12, 0)},
		{"unparseable time defaults to noon", "tomorrow", "sometime", at(2026, 3, 2, 12, 0)},
		{"missing date defaults to today", "", "3pm", at(2026, 3, 1, 15, 0)},
		{"everything missing", "", "", at(2026, 3, 1, 12, 0)},
		{"datetime expression keeps its clock", "2026-03-15T15:00:00", "", at(2026, 3, 15, 15, 0)},
		{"explicit time beats embedded clock", "2026-03-15T15:00:00", "9am", at(2026, 3, 15, 9, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := r.Resolve(tt.dateExpr, tt.timeExpr, base)
			if !start.Equal(tt.wantStart) {
				t.Errorf("Resolve(%q, %q) start = %v, want %v", tt.dateExpr, tt.timeExpr, start, tt.wantStart)
			}
			if want := tt.wantStart.Add(time.Hour); !end.Equal(want) {
				t.Errorf("Resolve(%q, %q) end = %v, want start+1h %v", tt.dateExpr, tt.timeExpr, end, want)
			}
		})
	}
}

func TestTodayTomorrowOneDayApart(t *testing.T) {
	r, _ := timeparse.NewResolver("UTC")
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	todayStart, _ := r.Resolve("today", "", base)
	tomorrowStart, _ := r.Resolve("tomorrow", "", base)

	if diff := tomorrowStart.Sub(todayStart); diff != 24*time.Hour {
		t.Errorf("tomorrow - today = %v, want 24h", diff)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		expr       string
		wantHour   int
		wantMinute int
		wantOK     bool
	}{
		{"3pm", 15, 0, true},
		{"3:30pm", 15, 30, true},
		{"3:30 PM", 15, 30, true},
		{"14:30", 14, 30, true},
		{"9", 9, 0, true},
		{"12am", 0, 0, true},
		{"12pm", 12, 0, true},
		{"12:45 am", 0, 45, true},
		{"23:59", 23, 59, true},
		{"25:00", 0, 0, false},
		{"9:75", 0, 0, false},
		{"", 0, 0, false},
		{"half past nine", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			hour, minute, ok := timeparse.ParseClock(tt.expr)
			if ok != tt.wantOK {
				t.Fatalf("ParseClock(%q) ok = %v, want %v", tt.expr, ok, tt.wantOK)
			}
			if ok && (hour != tt.wantHour || minute != tt.wantMinute) {
				t.Errorf("ParseClock(%q) = %d:%02d, want %d:%02d",
					tt.expr, hour, minute, tt.wantHour, tt.wantMinute)
			}
		})
	}
}

func TestDayBounds(t *testing.T) {
	r, _ := timeparse.NewResolver("UTC")
	noon := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	start := r.StartOfDay(noon)
	if want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", start, want)
	}

	end := r.EndOfDay(noon)
	if want := time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC); !end.Equal(want) {
		t.Errorf("EndOfDay = %v, want %v", end, want)
	}
}
