// file: internals/features/rollcall/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// SubmitAttendanceRequest upserts one mark. IsPresent is a pointer so
// an explicit `false` survives validation. The session snapshot fields
// travel with the mark so reports can render it without re-derivation.
type SubmitAttendanceRequest struct {
	SessionID string    `json:"session_id" validate:"required,max=300"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	IsPresent *bool     `json:"is_present" validate:"required"`

	CourseTitle string `json:"course_title" validate:"required,max=160"`
	CourseCode  string `json:"course_code" validate:"omitempty,max=20"`
	FieldName   string `json:"field_name" validate:"omitempty,max=120"`
	Level       string `json:"level" validate:"omitempty,max=40"`
	Room        string `json:"room" validate:"omitempty,max=60"`
	Lecturer    string `json:"lecturer" validate:"omitempty,max=160"`

	// optional client clock; the server clock fills it when absent
	Timestamp *time.Time `json:"timestamp" validate:"omitempty"`
}

// Batch submit; each record succeeds or fails on its own.
type BatchSubmitAttendanceRequest struct {
	Records []SubmitAttendanceRequest `json:"records" validate:"required,min=1,dive"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// AttendanceActionInserted / Updated report what the upsert did.
const (
	AttendanceActionInserted = "inserted"
	AttendanceActionUpdated  = "updated"
)

type SubmitAttendanceResult struct {
	Action    string    `json:"action"` // "inserted" | "updated"
	SessionID string    `json:"session_id"`
	StudentID uuid.UUID `json:"student_id"`
	IsPresent bool      `json:"is_present"`
}

type BatchFailure struct {
	Index     int       `json:"index"`
	StudentID uuid.UUID `json:"student_id"`
	Reason    string    `json:"reason"`
}
