// file: internals/features/rollcall/reports/dto/report_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type AbsenteeReportRequest struct {
	ReportType string `query:"report_type"` // daily | weekly | monthly | custom
	DateFrom   string `query:"date_from"`
	DateTo     string `query:"date_to"`

	Field     string `query:"field"`
	Level     string `query:"level"`
	Course    string `query:"course"`
	Student   string `query:"student_name"` // partial match
	Matricule string `query:"matricule"`    // partial match
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AbsenteeRow struct {
	StudentID        uuid.UUID `json:"student_id"`
	StudentName      string    `json:"student_name"`
	StudentMatricule string    `json:"student_matricule"`
	Field            string    `json:"field"`
	Level            string    `json:"level"`
	Course           string    `json:"course"`
	Date             string    `json:"date"`
	TimeSlot         string    `json:"time_slot"`
	ParentName       string    `json:"parent_name"`
	ParentPhone      string    `json:"parent_phone"`
	ParentEmail      *string   `json:"parent_email,omitempty"`
}

type FieldSummaryRow struct {
	Field          string  `json:"field"`
	TotalStudents  int64   `json:"total_students"`
	TotalMarks     int64   `json:"total_marks"`
	TotalAbsences  int64   `json:"total_absences"`
	AttendanceRate float64 `json:"attendance_rate"` // percent, 100.0 when no marks
}

type AbsenceDetail struct {
	Course   string `json:"course"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}

type AbsenteeHoursRow struct {
	StudentID        uuid.UUID       `json:"student_id"`
	StudentName      string          `json:"student_name"`
	StudentMatricule string          `json:"student_matricule"`
	Field            string          `json:"field"`
	Level            string          `json:"level"`
	Absences         int64           `json:"absences"`
	HoursMissed      int64           `json:"hours_missed"`
	Details          []AbsenceDetail `json:"details"`
}

type ReportEnvelope struct {
	ReportType string    `json:"report_type"`
	DateFrom   time.Time `json:"date_from"`
	DateTo     time.Time `json:"date_to"`
	Rows       any       `json:"rows"`
}
