// file: internals/features/rollcall/sessions/service/deriver_service.go
package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"rollcall_backend/internals/constants"
	studentModel "rollcall_backend/internals/features/academics/students/model"
	timetableModel "rollcall_backend/internals/features/academics/timetable/model"
	"rollcall_backend/internals/features/rollcall/sessions/dto"
)

// A session becomes visible this many minutes before its start time and
// stays visible until the end minute, both bounds inclusive.
const LeadMinutes = 30

var whitespaceRun = regexp.MustCompile(`\s+`)

/* =========================================================
 * Session derivation
 *
 * Pure function of (timetable snapshot, roster snapshot, now):
 * calling it twice within the same minute yields identical output
 * modulo roster changes.
 * ========================================================= */

// DeriveSessions filters the timetable to slots that are current or
// upcoming for the given instant and joins in the roster subset of each
// matching slot.
func DeriveSessions(entries []timetableModel.TimetableEntryModel, students []studentModel.StudentModel, now time.Time) []dto.Session {
	currentDay := now.Weekday().String()
	currentMinutes := now.Hour()*60 + now.Minute()

	sessions := make([]dto.Session, 0)
	if !constants.IsTeachingDay(currentDay) {
		return sessions
	}
	for i := range entries {
		e := &entries[i]
		if e.TimetableEntryDay != currentDay {
			continue
		}

		startStr, endStr, startMin, endMin, ok := ParseTimeSlot(e.TimetableEntryTimeSlot)
		if !ok {
			// one bad row must not break session generation for the day
			continue
		}

		if currentMinutes < startMin-LeadMinutes || currentMinutes > endMin {
			continue
		}

		roster := make([]studentModel.StudentModel, 0)
		for _, s := range students {
			if s.StudentField == e.TimetableEntryField && s.StudentLevel == e.TimetableEntryLevel {
				roster = append(roster, s)
			}
		}

		sessions = append(sessions, dto.Session{
			ID:          SessionID(e.TimetableEntryField, e.TimetableEntryLevel, e.TimetableEntryDay, e.TimetableEntryTimeSlot),
			CourseTitle: e.TimetableEntryCourse,
			CourseCode:  CourseCode(e.TimetableEntryCourse),
			FieldName:   e.TimetableEntryField,
			Level:       e.TimetableEntryLevel,
			Room:        e.TimetableEntryRoom,
			StartTime:   startStr,
			EndTime:     endStr,
			Day:         e.TimetableEntryDay,
			Lecturer:    e.TimetableEntryLecturer,
			Students:    roster,
		})
	}
	return sessions
}

// ParseTimeSlot parses `"HH:MM - HH:MM"` (24-hour) into the original
// start/end strings and their minutes-since-midnight offsets. ok is false
// for anything that is not exactly one " - " separator around two
// numeric HH:MM times.
func ParseTimeSlot(slot string) (startStr, endStr string, startMin, endMin int, ok bool) {
	parts := strings.Split(slot, " - ")
	if len(parts) != 2 {
		return "", "", 0, 0, false
	}
	startMin, ok = timeToMinutes(parts[0])
	if !ok {
		return "", "", 0, 0, false
	}
	endMin, ok = timeToMinutes(parts[1])
	if !ok {
		return "", "", 0, 0, false
	}
	return parts[0], parts[1], startMin, endMin, true
}

func timeToMinutes(s string) (int, bool) {
	hm := strings.Split(s, ":")
	if len(hm) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// SessionID builds the deterministic session id: the four key parts
// joined with hyphens, with every internal whitespace run collapsed to a
// hyphen. Stable across repeated derivations of the same slot, which is
// what completion tracking keys on.
func SessionID(field, level, day, timeSlot string) string {
	joined := field + "-" + level + "-" + day + "-" + timeSlot
	return whitespaceRun.ReplaceAllString(joined, "-")
}

// CourseCode derives the cosmetic short code: uppercase initials of each
// whitespace-separated word ("Database Systems" → "DS").
func CourseCode(title string) string {
	var b strings.Builder
	for _, word := range strings.Fields(title) {
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
