package service

import (
	"testing"
	"time"

	studentModel "rollcall_backend/internals/features/academics/students/model"
	timetableModel "rollcall_backend/internals/features/academics/timetable/model"
)

// mondayAt returns a fixed Monday with the given wall-clock time.
// 2026-01-05 is a Monday.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2026, 1, 5, hour, minute, 0, 0, time.UTC)
}

func tt(day, slot, course, field, level string) timetableModel.TimetableEntryModel {
	return timetableModel.TimetableEntryModel{
		TimetableEntryDay:      day,
		TimetableEntryTimeSlot: slot,
		TimetableEntryCourse:   course,
		TimetableEntryField:    field,
		TimetableEntryLevel:    level,
		TimetableEntryRoom:     "Lab 101",
		TimetableEntryLecturer: "Dr. Smith",
	}
}

func st(name, matricule, field, level string) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentName:      name,
		StudentMatricule: matricule,
		StudentField:     field,
		StudentLevel:     level,
	}
}

func TestDeriveSessionsDayFilter(t *testing.T) {
	entries := []timetableModel.TimetableEntryModel{
		tt("Monday", "08:00 - 10:00", "Database Systems", "Computer Science", "Level 200"),
		tt("Tuesday", "08:00 - 10:00", "Software Engineering Principles", "Software Engineering", "Level 200"),
	}

	got := DeriveSessions(entries, nil, mondayAt(8, 30))
	if len(got) != 1 {
		t.Fatalf("DeriveSessions() = %d sessions, want 1", len(got))
	}
	if got[0].Day != "Monday" {
		t.Errorf("session day = %q, want Monday", got[0].Day)
	}
}

func TestDeriveSessionsVisibilityWindow(t *testing.T) {
	entries := []timetableModel.TimetableEntryModel{
		tt("Monday", "08:00 - 10:00", "Database Systems", "Computer Science", "Level 200"),
	}

	tests := []struct {
		name    string
		now     time.Time
		visible bool
	}{
		{"31 min before start", mondayAt(7, 29), false},
		{"exactly 30 min before start", mondayAt(7, 30), true},
		{"35 min before start is outside", mondayAt(7, 25), false},
		{"at start", mondayAt(8, 0), true},
		{"mid-session", mondayAt(9, 15), true},
		{"exactly at end", mondayAt(10, 0), true},
		{"one minute past end", mondayAt(10, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveSessions(entries, nil, tc.now)
			if visible := len(got) == 1; visible != tc.visible {
				t.Errorf("at %02d:%02d visible = %v, want %v",
					tc.now.Hour(), tc.now.Minute(), visible, tc.visible)
			}
		})
	}
}

func TestDeriveSessionsWeekend(t *testing.T) {
	entries := []timetableModel.TimetableEntryModel{
		tt("Monday", "08:00 - 10:00", "Database Systems", "Computer Science", "Level 200"),
	}
	saturday := time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC)
	if got := DeriveSessions(entries, nil, saturday); len(got) != 0 {
		t.Errorf("DeriveSessions() on Saturday = %d sessions, want 0", len(got))
	}
}

func TestDeriveSessionsRosterJoin(t *testing.T) {
	entries := []timetableModel.TimetableEntryModel{
		tt("Monday", "08:00 - 10:00", "Database Systems", "Computer Science", "Level 200"),
	}
	students := []studentModel.StudentModel{
		st("Alice Johnson", "CS200/001", "Computer Science", "Level 200"),
		st("Bob Smith", "SE200/002", "Software Engineering", "Level 200"),
		st("Carol Davis", "CS100/003", "Computer Science", "Level 100"),
	}

	got := DeriveSessions(entries, students, mondayAt(8, 30))
	if len(got) != 1 {
		t.Fatalf("DeriveSessions() = %d sessions, want 1", len(got))
	}
	if len(got[0].Students) != 1 {
		t.Fatalf("roster = %d students, want 1", len(got[0].Students))
	}
	if got[0].Students[0].StudentMatricule != "CS200/001" {
		t.Errorf("roster student = %q, want CS200/001", got[0].Students[0].StudentMatricule)
	}

	// no stale caching: a roster change between calls changes the result
	students = append(students, st("Dan Ekema", "CS200/004", "Computer Science", "Level 200"))
	got = DeriveSessions(entries, students, mondayAt(8, 30))
	if len(got[0].Students) != 2 {
		t.Fatalf("roster after add = %d students, want 2", len(got[0].Students))
	}
}

func TestDeriveSessionsSkipsMalformedTimeSlot(t *testing.T) {
	entries := []timetableModel.TimetableEntryModel{
		tt("Monday", "08:00-10:00", "Database Systems", "Computer Science", "Level 200"), // no spaces around dash
		tt("Monday", "08:00 - 10:00", "Programming Fundamentals", "Computer Science", "Level 100"),
		tt("Monday", "0a:00 - 10:00", "Networks", "Computer Science", "Level 300"),
		tt("Monday", "08:00 - 09:00 - 10:00", "Compilers", "Computer Science", "Level 400"),
	}

	got := DeriveSessions(entries, nil, mondayAt(8, 30))
	if len(got) != 1 {
		t.Fatalf("DeriveSessions() = %d sessions, want 1 (malformed slots skipped)", len(got))
	}
	if got[0].CourseTitle != "Programming Fundamentals" {
		t.Errorf("survivor = %q, want the well-formed entry", got[0].CourseTitle)
	}
}

func TestSessionIDDeterministic(t *testing.T) {
	a := SessionID("Computer Science", "Level 200", "Monday", "08:00 - 10:00")
	b := SessionID("Computer Science", "Level 200", "Monday", "08:00 - 10:00")
	if a != b {
		t.Fatalf("SessionID not deterministic: %q vs %q", a, b)
	}

	want := "Computer-Science-Level-200-Monday-08:00---10:00"
	if a != want {
		t.Errorf("SessionID = %q, want %q", a, want)
	}

	if a == SessionID("Computer Science", "Level 100", "Monday", "08:00 - 10:00") {
		t.Error("SessionID must differ when level differs")
	}
}

func TestDeriveSessionsIDStableAcrossCalls(t *testing.T) {
	entries := []timetableModel.TimetableEntryModel{
		tt("Monday", "08:00 - 10:00", "Database Systems", "Computer Science", "Level 200"),
	}
	first := DeriveSessions(entries, nil, mondayAt(8, 0))
	second := DeriveSessions(entries, nil, mondayAt(9, 45))
	if first[0].ID != second[0].ID {
		t.Errorf("ids differ across derivations: %q vs %q", first[0].ID, second[0].ID)
	}
}

func TestCourseCode(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Database Systems", "DS"},
		{"Programming Fundamentals", "PF"},
		{"Software Engineering Principles", "SEP"},
		{"networks", "N"},
		{"  padded   title  ", "PT"},
	}
	for _, tc := range tests {
		if got := CourseCode(tc.title); got != tc.want {
			t.Errorf("CourseCode(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestParseTimeSlot(t *testing.T) {
	startStr, endStr, startMin, endMin, ok := ParseTimeSlot("08:00 - 10:00")
	if !ok {
		t.Fatal("ParseTimeSlot() ok = false, want true")
	}
	if startStr != "08:00" || endStr != "10:00" {
		t.Errorf("strings = %q, %q", startStr, endStr)
	}
	if startMin != 480 || endMin != 600 {
		t.Errorf("minutes = %d, %d, want 480, 600", startMin, endMin)
	}

	bad := []string{"08:00-10:00", "08:00", "08:00 - ten", "8 - 10", "", "08:00 - 09:00 - 10:00"}
	for _, s := range bad {
		if _, _, _, _, ok := ParseTimeSlot(s); ok {
			t.Errorf("ParseTimeSlot(%q) ok = true, want false", s)
		}
	}
}
