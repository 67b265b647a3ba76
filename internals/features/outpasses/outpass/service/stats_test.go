// file: internals/features/outpasses/outpass/service/stats_test.go
package service

import (
	"testing"
	"time"
)

func TestTrendWindowChronological(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	window := TrendWindow(today, 7)

	if len(window) != 7 {
		t.Fatalf("window length = %d, want 7", len(window))
	}
	if got := window[0].Format("2006-01-02"); got != "2026-03-04" {
		t.Errorf("window starts at %s, want 2026-03-04", got)
	}
	if got := window[6].Format("2006-01-02"); got != "2026-03-10" {
		t.Errorf("window ends at %s, want 2026-03-10", got)
	}
	for i := 1; i < len(window); i++ {
		if !window[i].After(window[i-1]) {
			t.Fatalf("window not chronological at %d: %v -> %v", i, window[i-1], window[i])
		}
	}
}

func TestTrendWindowCrossesMonthBoundary(t *testing.T) {
	today := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	window := TrendWindow(today, 7)
	if got := window[0].Format("2006-01-02"); got != "2026-03-27" {
		t.Errorf("window starts at %s, want 2026-03-27", got)
	}
}

func TestTrendWindowKeepsLocalCalendarDay(t *testing.T) {
	// Shortly after local midnight in a zone ahead of UTC, the UTC clock is
	// still on the previous calendar day. The window labels must follow the
	// local calendar, not the UTC one.
	ist := time.FixedZone("IST", 5*3600+1800)
	today := time.Date(2026, 3, 10, 0, 30, 0, 0, ist)

	window := TrendWindow(today, 7)

	last := window[len(window)-1]
	if got := last.Format("2006-01-02"); got != "2026-03-10" {
		t.Fatalf("last day = %s, want 2026-03-10", got)
	}
	if last.Hour() != 0 || last.Minute() != 0 {
		t.Fatalf("last day not at local midnight: %s", last)
	}
	if first := window[0].Format("2006-01-02"); first != "2026-03-04" {
		t.Fatalf("first day = %s, want 2026-03-04", first)
	}
}
