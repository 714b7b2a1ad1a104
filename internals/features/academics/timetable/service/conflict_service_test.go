package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	m "rollcall_backend/internals/features/academics/timetable/model"
)

func entry(id uuid.UUID, day, slot, course, field, room string) m.TimetableEntryModel {
	return m.TimetableEntryModel{
		TimetableEntryID:       id,
		TimetableEntryDay:      day,
		TimetableEntryTimeSlot: slot,
		TimetableEntryCourse:   course,
		TimetableEntryField:    field,
		TimetableEntryRoom:     room,
	}
}

func TestCheckConflictsRoom(t *testing.T) {
	existing := []m.TimetableEntryModel{
		entry(uuid.New(), "Monday", "08:00 - 10:00", "DB", "CS", "101"),
	}

	// same day/time/room, different field → rejected
	err := CheckConflicts(existing, "Monday", "08:00 - 10:00", "SE Basics", "SE", "101", uuid.Nil)
	if err == nil {
		t.Fatal("CheckConflicts() = nil, want room conflict")
	}
	if !strings.Contains(err.Error(), "Room conflict") {
		t.Errorf("error = %q, want room conflict message", err.Error())
	}
	if !strings.Contains(err.Error(), "DB") || !strings.Contains(err.Error(), "CS") {
		t.Errorf("error = %q, want conflicting course and field named", err.Error())
	}

	// different room is fine
	if err := CheckConflicts(existing, "Monday", "08:00 - 10:00", "SE Basics", "SE", "102", uuid.Nil); err != nil {
		t.Fatalf("CheckConflicts() = %v, want nil", err)
	}

	// different slot is fine
	if err := CheckConflicts(existing, "Monday", "10:00 - 12:00", "SE Basics", "SE", "101", uuid.Nil); err != nil {
		t.Fatalf("CheckConflicts() = %v, want nil", err)
	}
}

func TestCheckConflictsField(t *testing.T) {
	existing := []m.TimetableEntryModel{
		entry(uuid.New(), "Monday", "08:00 - 10:00", "DB", "CS", "101"),
	}

	// same field, same slot, different course → rejected
	err := CheckConflicts(existing, "Monday", "08:00 - 10:00", "Algorithms", "CS", "102", uuid.Nil)
	if err == nil {
		t.Fatal("CheckConflicts() = nil, want field conflict")
	}
	if !strings.Contains(err.Error(), "Field conflict") {
		t.Errorf("error = %q, want field conflict message", err.Error())
	}

	// same field, same slot, same course (e.g. editing room) → allowed,
	// as long as the room does not clash
	if err := CheckConflicts(existing, "Monday", "08:00 - 10:00", "DB", "CS", "102", uuid.Nil); err != nil {
		t.Fatalf("CheckConflicts() = %v, want nil (same course re-save)", err)
	}
}

func TestCheckConflictsExcludesEditedEntry(t *testing.T) {
	id := uuid.New()
	existing := []m.TimetableEntryModel{
		entry(id, "Monday", "08:00 - 10:00", "DB", "CS", "101"),
	}

	// editing the entry itself must not conflict with its own row
	if err := CheckConflicts(existing, "Monday", "08:00 - 10:00", "DB", "CS", "101", id); err != nil {
		t.Fatalf("CheckConflicts() = %v, want nil when excluding own id", err)
	}
	// a different id still conflicts
	if err := CheckConflicts(existing, "Monday", "08:00 - 10:00", "DB", "CS", "101", uuid.New()); err == nil {
		t.Fatal("CheckConflicts() = nil, want room conflict for other id")
	}
}

func TestSharedCommonCourseAcrossFields(t *testing.T) {
	existing := []m.TimetableEntryModel{
		entry(uuid.New(), "Monday", "08:00 - 10:00", "Mathematics", "CS", "Amphi A"),
	}

	// two different fields taking the same common course in the same slot
	// but different rooms: tolerated
	if err := CheckConflicts(existing, "Monday", "08:00 - 10:00", "Mathematics", "SE", "Amphi B", uuid.Nil); err != nil {
		t.Fatalf("CheckConflicts() = %v, want nil (common course, different room)", err)
	}
	// same room still hits the room rule
	if err := CheckConflicts(existing, "Monday", "08:00 - 10:00", "Mathematics", "SE", "Amphi A", uuid.Nil); err == nil {
		t.Fatal("CheckConflicts() = nil, want room conflict")
	}
}
