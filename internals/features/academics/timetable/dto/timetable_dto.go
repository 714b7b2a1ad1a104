// file: internals/features/academics/timetable/dto/timetable_dto.go
package dto

import (
	m "rollcall_backend/internals/features/academics/timetable/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateTimetableEntryRequest struct {
	Day      string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	TimeSlot string `json:"time_slot" validate:"required,max=20"`
	Course   string `json:"course" validate:"required,max=160"`
	Field    string `json:"field" validate:"required,max=120"`
	Level    string `json:"level" validate:"required,max=40"`
	Room     string `json:"room" validate:"required,max=60"`
	Lecturer string `json:"lecturer" validate:"required,max=160"`
}

// Update is a full replace; the original admin form always submits every
// column.
type UpdateTimetableEntryRequest = CreateTimetableEntryRequest

// Filter / List (query)
type FilterTimetableRequest struct {
	Day   string `query:"day"`
	Field string `query:"field"`
	Level string `query:"level"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateTimetableEntryRequest) ToModel() m.TimetableEntryModel {
	return m.TimetableEntryModel{
		TimetableEntryDay:      r.Day,
		TimetableEntryTimeSlot: r.TimeSlot,
		TimetableEntryCourse:   r.Course,
		TimetableEntryField:    r.Field,
		TimetableEntryLevel:    r.Level,
		TimetableEntryRoom:     r.Room,
		TimetableEntryLecturer: r.Lecturer,
	}
}

func ApplyToModel(r UpdateTimetableEntryRequest, mdl *m.TimetableEntryModel) {
	mdl.TimetableEntryDay = r.Day
	mdl.TimetableEntryTimeSlot = r.TimeSlot
	mdl.TimetableEntryCourse = r.Course
	mdl.TimetableEntryField = r.Field
	mdl.TimetableEntryLevel = r.Level
	mdl.TimetableEntryRoom = r.Room
	mdl.TimetableEntryLecturer = r.Lecturer
}
