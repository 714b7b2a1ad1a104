package controller

import (
	"testing"

	"rollcall_backend/internals/features/rollcall/dashboard/dto"
)

func TestTopAbsenteeFields(t *testing.T) {
	stats := []dto.FieldStat{
		{Field: "Computer Science", AbsenteeCount: 4, AbsenteeRate: 10},
		{Field: "Software Engineering", AbsenteeCount: 0, AbsenteeRate: 0},
		{Field: "Networking", AbsenteeCount: 8, AbsenteeRate: 25},
		{Field: "Information Systems", AbsenteeCount: 2, AbsenteeRate: 25},
		{Field: "Cybersecurity", AbsenteeCount: 1, AbsenteeRate: 5},
	}

	got := topAbsenteeFields(stats, 5)

	// zero-absence fields never appear
	for _, s := range got {
		if s.AbsenteeCount == 0 {
			t.Fatalf("field %s has no absences but was listed", s.Field)
		}
	}
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}

	// worst rate first, count breaks the tie
	wantOrder := []string{"Networking", "Information Systems", "Computer Science", "Cybersecurity"}
	for i, want := range wantOrder {
		if got[i].Field != want {
			t.Errorf("position %d = %s, want %s", i, got[i].Field, want)
		}
	}
}

func TestTopAbsenteeFieldsLimit(t *testing.T) {
	stats := make([]dto.FieldStat, 0, 8)
	for i := 0; i < 8; i++ {
		stats = append(stats, dto.FieldStat{
			Field:         string(rune('A' + i)),
			AbsenteeCount: int64(i + 1),
			AbsenteeRate:  float64(i + 1),
		})
	}
	if got := topAbsenteeFields(stats, 5); len(got) != 5 {
		t.Errorf("len = %d, want 5", len(got))
	}
}
