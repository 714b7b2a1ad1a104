package service

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveRangeDaily(t *testing.T) {
	now := time.Date(2026, 3, 11, 14, 30, 0, 0, time.UTC) // a Wednesday
	from, to, err := ResolveRange(ReportTypeDaily, "", "", now)
	if err != nil {
		t.Fatalf("ResolveRange() error = %v", err)
	}
	want := date(2026, 3, 11)
	if !from.Equal(want) || !to.Equal(want) {
		t.Errorf("daily range = [%v, %v], want [%v, %v]", from, to, want, want)
	}
}

func TestResolveRangeWeekly(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
	}{
		{"midweek", time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)}, // Wednesday
		{"monday itself", time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)},
		{"sunday wraps back", time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)},
	}
	wantFrom := date(2026, 3, 9)  // Monday
	wantTo := date(2026, 3, 15)   // Sunday

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			from, to, err := ResolveRange(ReportTypeWeekly, "", "", tc.now)
			if err != nil {
				t.Fatalf("ResolveRange() error = %v", err)
			}
			if !from.Equal(wantFrom) || !to.Equal(wantTo) {
				t.Errorf("weekly range = [%v, %v], want [%v, %v]", from, to, wantFrom, wantTo)
			}
		})
	}
}

func TestResolveRangeMonthly(t *testing.T) {
	now := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)
	from, to, err := ResolveRange(ReportTypeMonthly, "", "", now)
	if err != nil {
		t.Fatalf("ResolveRange() error = %v", err)
	}
	if !from.Equal(date(2026, 2, 1)) || !to.Equal(date(2026, 2, 28)) {
		t.Errorf("monthly range = [%v, %v], want [2026-02-01, 2026-02-28]", from, to)
	}
}

func TestResolveRangeCustom(t *testing.T) {
	now := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

	from, to, err := ResolveRange(ReportTypeCustom, "2026-01-05", "2026-01-09", now)
	if err != nil {
		t.Fatalf("ResolveRange() error = %v", err)
	}
	if !from.Equal(date(2026, 1, 5)) || !to.Equal(date(2026, 1, 9)) {
		t.Errorf("custom range = [%v, %v]", from, to)
	}

	// missing bounds default to today
	from, to, err = ResolveRange(ReportTypeCustom, "", "", now)
	if err != nil {
		t.Fatalf("ResolveRange() error = %v", err)
	}
	if !from.Equal(date(2026, 3, 11)) || !to.Equal(date(2026, 3, 11)) {
		t.Errorf("defaulted custom range = [%v, %v], want today", from, to)
	}

	if _, _, err := ResolveRange(ReportTypeCustom, "05/01/2026", "", now); err == nil {
		t.Error("ResolveRange() = nil error for malformed date_from")
	}
	if _, _, err := ResolveRange(ReportTypeCustom, "2026-01-09", "2026-01-05", now); err == nil {
		t.Error("ResolveRange() = nil error for inverted range")
	}

	// unknown report types fall through to custom handling
	from, to, err = ResolveRange("quarterly", "2026-01-05", "2026-01-09", now)
	if err != nil {
		t.Fatalf("ResolveRange() error = %v", err)
	}
	if !from.Equal(date(2026, 1, 5)) || !to.Equal(date(2026, 1, 9)) {
		t.Errorf("fallthrough range = [%v, %v]", from, to)
	}
}
