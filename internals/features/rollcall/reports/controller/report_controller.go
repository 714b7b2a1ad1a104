// file: internals/features/rollcall/reports/controller/report_controller.go
package controller

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	fieldModel "rollcall_backend/internals/features/academics/fields/model"
	studentModel "rollcall_backend/internals/features/academics/students/model"
	"rollcall_backend/internals/features/rollcall/reports/dto"
	"rollcall_backend/internals/features/rollcall/reports/service"
	helper "rollcall_backend/internals/helpers"
)

// Every timetable slot spans two hours, so missed hours = absences * 2.
const SessionDurationHours = 2

/* =======================================================
   CONTROLLER
   ======================================================= */

type ReportController struct {
	DB *gorm.DB

	Now func() time.Time
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Now: time.Now}
}

/* =======================================================
   HANDLERS
   ======================================================= */

// Absentees lists every absence mark in the resolved range, joined with
// the student's details and parent contacts, newest first.
func (ctl *ReportController) Absentees(c *fiber.Ctx) error {
	var q dto.AbsenteeReportRequest
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}

	from, to, err := service.ResolveRange(q.ReportType, q.DateFrom, q.DateTo, ctl.Now())
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date range")
	}

	type row struct {
		StudentID          uuid.UUID
		StudentName        string
		StudentMatricule   string
		StudentField       string
		StudentLevel       string
		StudentParentName  string
		StudentParentPhone string
		StudentParentEmail *string

		AttendanceRecordCourse    string
		AttendanceRecordDate      time.Time
		AttendanceRecordTimestamp time.Time
	}

	db := ctl.DB.Table("attendance_records").
		Select(`students.student_id, students.student_name, students.student_matricule,
			students.student_field, students.student_level,
			students.student_parent_name, students.student_parent_phone, students.student_parent_email,
			attendance_records.attendance_record_course,
			attendance_records.attendance_record_date,
			attendance_records.attendance_record_timestamp`).
		Joins("JOIN students ON students.student_id = attendance_records.attendance_record_student_id").
		Where("students.student_deleted_at IS NULL").
		Where("attendance_records.attendance_record_is_present = ?", false).
		Where("attendance_records.attendance_record_date BETWEEN ? AND ?", from, to)

	if q.Field != "" {
		db = db.Where("students.student_field = ?", q.Field)
	}
	if q.Level != "" {
		db = db.Where("students.student_level = ?", q.Level)
	}
	if q.Course != "" {
		db = db.Where("attendance_records.attendance_record_course = ?", q.Course)
	}
	if s := strings.TrimSpace(q.Student); s != "" {
		db = db.Where("LOWER(students.student_name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(q.Matricule); s != "" {
		db = db.Where("LOWER(students.student_matricule) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var rows []row
	if err := db.Order("attendance_records.attendance_record_timestamp DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load absentees")
	}

	out := make([]dto.AbsenteeRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AbsenteeRow{
			StudentID:        r.StudentID,
			StudentName:      r.StudentName,
			StudentMatricule: r.StudentMatricule,
			Field:            r.StudentField,
			Level:            r.StudentLevel,
			Course:           r.AttendanceRecordCourse,
			Date:             r.AttendanceRecordDate.Format("2006-01-02"),
			TimeSlot:         reconstructTimeSlot(r.AttendanceRecordTimestamp),
			ParentName:       r.StudentParentName,
			ParentPhone:      r.StudentParentPhone,
			ParentEmail:      r.StudentParentEmail,
		})
	}

	return helper.JsonOK(c, "absentee report", dto.ReportEnvelope{
		ReportType: q.ReportType,
		DateFrom:   from,
		DateTo:     to,
		Rows:       out,
	})
}

// FieldSummary aggregates attendance per field over the range. A field
// with no marks reports a 100.0 rate rather than dividing by zero.
func (ctl *ReportController) FieldSummary(c *fiber.Ctx) error {
	var q dto.AbsenteeReportRequest
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}

	from, to, err := service.ResolveRange(q.ReportType, q.DateFrom, q.DateTo, ctl.Now())
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date range")
	}

	var fields []fieldModel.FieldModel
	if err := ctl.DB.Order("field_name ASC").Find(&fields).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load fields")
	}

	type countRow struct {
		StudentField string
		Total        int64
	}
	var studentCounts []countRow
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Select("student_field, COUNT(*) AS total").
		Group("student_field").
		Scan(&studentCounts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count students")
	}
	students := make(map[string]int64, len(studentCounts))
	for _, r := range studentCounts {
		students[r.StudentField] = r.Total
	}

	type markRow struct {
		StudentField string
		TotalMarks   int64
		Absences     int64
	}
	var marks []markRow
	if err := ctl.DB.Table("attendance_records").
		Select(`students.student_field,
			COUNT(*) AS total_marks,
			SUM(CASE WHEN attendance_records.attendance_record_is_present THEN 0 ELSE 1 END) AS absences`).
		Joins("JOIN students ON students.student_id = attendance_records.attendance_record_student_id").
		Where("students.student_deleted_at IS NULL").
		Where("attendance_records.attendance_record_date BETWEEN ? AND ?", from, to).
		Group("students.student_field").
		Scan(&marks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to aggregate attendance")
	}
	byField := make(map[string]markRow, len(marks))
	for _, r := range marks {
		byField[r.StudentField] = r
	}

	out := make([]dto.FieldSummaryRow, 0, len(fields))
	for _, f := range fields {
		m := byField[f.FieldName]
		rate := 100.0
		if m.TotalMarks > 0 {
			rate = float64(m.TotalMarks-m.Absences) / float64(m.TotalMarks) * 100
		}
		out = append(out, dto.FieldSummaryRow{
			Field:          f.FieldName,
			TotalStudents:  students[f.FieldName],
			TotalMarks:     m.TotalMarks,
			TotalAbsences:  m.Absences,
			AttendanceRate: rate,
		})
	}

	return helper.JsonOK(c, "field summary", dto.ReportEnvelope{
		ReportType: q.ReportType,
		DateFrom:   from,
		DateTo:     to,
		Rows:       out,
	})
}

// AbsenteeHours totals missed hours per student over the range, with
// the individual absences listed under each student.
func (ctl *ReportController) AbsenteeHours(c *fiber.Ctx) error {
	var q dto.AbsenteeReportRequest
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}

	from, to, err := service.ResolveRange(q.ReportType, q.DateFrom, q.DateTo, ctl.Now())
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date range")
	}

	type row struct {
		StudentID        uuid.UUID
		StudentName      string
		StudentMatricule string
		StudentField     string
		StudentLevel     string

		AttendanceRecordCourse    string
		AttendanceRecordDate      time.Time
		AttendanceRecordTimestamp time.Time
	}

	db := ctl.DB.Table("attendance_records").
		Select(`students.student_id, students.student_name, students.student_matricule,
			students.student_field, students.student_level,
			attendance_records.attendance_record_course,
			attendance_records.attendance_record_date,
			attendance_records.attendance_record_timestamp`).
		Joins("JOIN students ON students.student_id = attendance_records.attendance_record_student_id").
		Where("students.student_deleted_at IS NULL").
		Where("attendance_records.attendance_record_is_present = ?", false).
		Where("attendance_records.attendance_record_date BETWEEN ? AND ?", from, to)

	if q.Field != "" {
		db = db.Where("students.student_field = ?", q.Field)
	}
	if q.Level != "" {
		db = db.Where("students.student_level = ?", q.Level)
	}

	var rows []row
	if err := db.Order("attendance_records.attendance_record_timestamp ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load absences")
	}

	// group per student, preserving first-seen order until the final sort
	byStudent := make(map[uuid.UUID]*dto.AbsenteeHoursRow, len(rows))
	order := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		entry, seen := byStudent[r.StudentID]
		if !seen {
			entry = &dto.AbsenteeHoursRow{
				StudentID:        r.StudentID,
				StudentName:      r.StudentName,
				StudentMatricule: r.StudentMatricule,
				Field:            r.StudentField,
				Level:            r.StudentLevel,
			}
			byStudent[r.StudentID] = entry
			order = append(order, r.StudentID)
		}
		entry.Absences++
		entry.HoursMissed = entry.Absences * SessionDurationHours
		entry.Details = append(entry.Details, dto.AbsenceDetail{
			Course:   r.AttendanceRecordCourse,
			Date:     r.AttendanceRecordDate.Format("2006-01-02"),
			TimeSlot: reconstructTimeSlot(r.AttendanceRecordTimestamp),
		})
	}

	out := make([]dto.AbsenteeHoursRow, 0, len(order))
	for _, id := range order {
		out = append(out, *byStudent[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].HoursMissed > out[j].HoursMissed })

	return helper.JsonOK(c, "absentee hours", dto.ReportEnvelope{
		ReportType: q.ReportType,
		DateFrom:   from,
		DateTo:     to,
		Rows:       out,
	})
}

/* =======================================================
   HELPERS
   ======================================================= */

// reconstructTimeSlot rebuilds the "HH:MM - HH:MM" label from the mark's
// timestamp and the fixed slot duration.
func reconstructTimeSlot(ts time.Time) string {
	return ts.Format("15:04") + " - " + ts.Add(SessionDurationHours*time.Hour).Format("15:04")
}
