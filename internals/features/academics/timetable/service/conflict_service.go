// file: internals/features/academics/timetable/service/conflict_service.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	m "rollcall_backend/internals/features/academics/timetable/model"
)

/* =========================================================
 * Timetable conflict checks
 *
 * Two rules, run before every create/update:
 *   - a room cannot be booked twice in the same day+slot
 *   - a field cannot have two different courses in the same
 *     day+slot (re-saving the same course is an edit and is
 *     allowed; two fields sharing a common course is allowed,
 *     the room rule still applies)
 * ========================================================= */

// FindRoomConflict returns the first other entry occupying the same
// (day, timeSlot, room), or nil.
func FindRoomConflict(entries []m.TimetableEntryModel, day, timeSlot, room string, excludeID uuid.UUID) *m.TimetableEntryModel {
	for i := range entries {
		e := &entries[i]
		if e.TimetableEntryID == excludeID {
			continue
		}
		if e.TimetableEntryDay == day &&
			e.TimetableEntryTimeSlot == timeSlot &&
			e.TimetableEntryRoom == room {
			return e
		}
	}
	return nil
}

// FindFieldConflict returns the first other entry booking the same field
// in the same (day, timeSlot) for a different course, or nil.
func FindFieldConflict(entries []m.TimetableEntryModel, day, timeSlot, field, course string, excludeID uuid.UUID) *m.TimetableEntryModel {
	for i := range entries {
		e := &entries[i]
		if e.TimetableEntryID == excludeID {
			continue
		}
		if e.TimetableEntryField == field &&
			e.TimetableEntryDay == day &&
			e.TimetableEntryTimeSlot == timeSlot &&
			e.TimetableEntryCourse != course {
			return e
		}
	}
	return nil
}

// CheckConflicts runs both rules and returns a 409 fiber error carrying
// the specific human-readable reason. Callers must not retry: the
// conflict recurs until day/time/room/field change.
func CheckConflicts(entries []m.TimetableEntryModel, day, timeSlot, course, field, room string, excludeID uuid.UUID) error {
	if other := FindRoomConflict(entries, day, timeSlot, room, excludeID); other != nil {
		return fiber.NewError(fiber.StatusConflict, fmt.Sprintf(
			"Room conflict: %s is already occupied at %s %s by %s (%s)",
			room, day, timeSlot, other.TimetableEntryCourse, other.TimetableEntryField,
		))
	}
	if other := FindFieldConflict(entries, day, timeSlot, field, course, excludeID); other != nil {
		return fiber.NewError(fiber.StatusConflict, fmt.Sprintf(
			"Field conflict: %s already has a different class (%s) at %s %s. Only common courses can share time slots.",
			field, other.TimetableEntryCourse, day, timeSlot,
		))
	}
	return nil
}
