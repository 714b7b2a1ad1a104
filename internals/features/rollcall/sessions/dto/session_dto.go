// file: internals/features/rollcall/sessions/dto/session_dto.go
package dto

import (
	studentModel "rollcall_backend/internals/features/academics/students/model"
)

// Session is a timetable entry instantiated for "today", joined with the
// matching roster subset. Never persisted; rebuilt on every derivation.
type Session struct {
	ID          string `json:"id"`
	CourseTitle string `json:"course_title"`
	CourseCode  string `json:"course_code"`
	FieldName   string `json:"field_name"`
	Level       string `json:"level"`
	Room        string `json:"room"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Day         string `json:"day"`
	Lecturer    string `json:"lecturer"`

	Students []studentModel.StudentModel `json:"students"`
}

// CompleteSessionRequest marks a derived session as done for today.
type CompleteSessionRequest struct {
	SessionID string `json:"session_id" validate:"required,max=300"`
	Field     string `json:"field" validate:"required,max=120"`
	Level     string `json:"level" validate:"required,max=40"`
	Day       string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
}
