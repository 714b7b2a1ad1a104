package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AttendanceRecordModel is one student's mark for one derived session on
// one date. Uniqueness on (session_id, student_id, date) makes repeated
// submits an update, never a duplicate row.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordSessionID string    `gorm:"not null;column:attendance_record_session_id;uniqueIndex:uq_attendance_session_student_date;index" json:"attendance_record_session_id"`
	AttendanceRecordStudentID uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_student_id;uniqueIndex:uq_attendance_session_student_date;index" json:"attendance_record_student_id"`

	AttendanceRecordDate datatypes.Date `gorm:"not null;column:attendance_record_date;uniqueIndex:uq_attendance_session_student_date;index" json:"attendance_record_date"`

	// session snapshot, denormalized so reports never have to re-derive it
	AttendanceRecordCourse     string `gorm:"not null;column:attendance_record_course" json:"attendance_record_course"`
	AttendanceRecordCourseCode string `gorm:"column:attendance_record_course_code"     json:"attendance_record_course_code"`
	AttendanceRecordField      string `gorm:"column:attendance_record_field"           json:"attendance_record_field"`
	AttendanceRecordLevel      string `gorm:"column:attendance_record_level"           json:"attendance_record_level"`
	AttendanceRecordRoom       string `gorm:"column:attendance_record_room"            json:"attendance_record_room"`
	AttendanceRecordLecturer   string `gorm:"column:attendance_record_lecturer"        json:"attendance_record_lecturer"`

	AttendanceRecordIsPresent bool `gorm:"not null;column:attendance_record_is_present" json:"attendance_record_is_present"`

	AttendanceRecordTimestamp time.Time `gorm:"not null;column:attendance_record_timestamp" json:"attendance_record_timestamp"`

	AttendanceRecordCreatedAt time.Time `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
