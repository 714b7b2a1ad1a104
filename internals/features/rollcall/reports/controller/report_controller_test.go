package controller

import (
	"testing"
	"time"
)

func TestReconstructTimeSlot(t *testing.T) {
	tests := []struct {
		ts   time.Time
		want string
	}{
		{time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC), "08:00 - 10:00"},
		{time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC), "14:30 - 16:30"},
		{time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC), "23:00 - 01:00"},
	}
	for _, tc := range tests {
		if got := reconstructTimeSlot(tc.ts); got != tc.want {
			t.Errorf("reconstructTimeSlot(%v) = %q, want %q", tc.ts, got, tc.want)
		}
	}
}
