package services

import (
	"testing"
	"time"
)

func TestDateAtLocationTruncatesToLocalMidnight(t *testing.T) {
	jerusalem, err := time.LoadLocation("Asia/Jerusalem")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 23:00 UTC is already the next calendar day in Jerusalem.
	raw := time.Date(2026, 3, 4, 23, 0, 0, 0, time.UTC)
	got := DateAtLocation(raw, jerusalem)

	want := time.Date(2026, 3, 5, 0, 0, 0, 0, jerusalem)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestDayRangeSpansOneDay(t *testing.T) {
	start, end := DayRange(time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC), time.UTC)

	if start.Hour() != 0 || start.Minute() != 0 {
		t.Fatalf("expected midnight start, got %s", start)
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("expected next-day end, got %s", end)
	}
}

func TestInclusiveRangeCoversBothBounds(t *testing.T) {
	from := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 7, 18, 0, 0, 0, time.UTC)

	fromStart, toEnd := InclusiveRange(from, to, time.UTC)
	if !fromStart.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected range start %s", fromStart)
	}
	if !toEnd.Equal(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected exclusive end past the last day, got %s", toEnd)
	}
}

func TestWeekDaysReturnsSevenConsecutiveDays(t *testing.T) {
	days := WeekDays(time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC), time.UTC)

	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	for index, day := range days {
		want := time.Date(2026, 3, 1+index, 0, 0, 0, 0, time.UTC)
		if !day.Equal(want) {
			t.Fatalf("day %d: expected %s, got %s", index, want, day)
		}
	}
}

func TestDayKeyFormat(t *testing.T) {
	if got := DayKey(time.Date(2026, 3, 4, 23, 59, 0, 0, time.UTC), time.UTC); got != "2026-03-04" {
		t.Fatalf("unexpected day key %q", got)
	}
}
