// file: internals/features/rollcall/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	studentModel "rollcall_backend/internals/features/academics/students/model"
	"rollcall_backend/internals/features/rollcall/attendance/dto"
	"rollcall_backend/internals/features/rollcall/attendance/model"
	helper "rollcall_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate

	Now func() time.Time
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New(), Now: time.Now}
}

/* =======================================================
   HANDLERS
   ======================================================= */

// Submit upserts one mark keyed on (session, student, today). The
// response says whether the row was inserted or updated so the caller
// can tell a correction from a first save.
func (ctl *AttendanceController) Submit(c *fiber.Ctx) error {
	var req dto.SubmitAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := ctl.upsert(req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save attendance")
	}

	if result.Action == dto.AttendanceActionInserted {
		return helper.JsonCreated(c, "attendance recorded", result)
	}
	return helper.JsonUpdated(c, "attendance updated", result)
}

// BatchSubmit saves a whole session's marks in one call. Records are
// independent: one failure never rolls back the others.
func (ctl *AttendanceController) BatchSubmit(c *fiber.Ctx) error {
	var req dto.BatchSubmitAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	saved := make([]dto.SubmitAttendanceResult, 0, len(req.Records))
	failed := make([]dto.BatchFailure, 0)

	for i, r := range req.Records {
		result, err := ctl.upsert(r)
		if err != nil {
			failed = append(failed, dto.BatchFailure{
				Index:     i,
				StudentID: r.StudentID,
				Reason:    "failed to save",
			})
			continue
		}
		saved = append(saved, result)
	}

	return helper.JsonOK(c,
		fmt.Sprintf("%d records saved, %d failed", len(saved), len(failed)),
		fiber.Map{"saved": saved, "failed": failed},
	)
}

// ListBySession returns today's marks for one derived session.
func (ctl *AttendanceController) ListBySession(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_id is required")
	}

	var rows []model.AttendanceRecordModel
	if err := ctl.DB.
		Where("attendance_record_session_id = ? AND attendance_record_date = ?", sessionID, dateOnly(ctl.Now())).
		Order("attendance_record_timestamp ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load attendance")
	}
	return helper.JsonList(c, "attendance fetched", rows, nil)
}

/* =======================================================
   HELPERS
   ======================================================= */

func (ctl *AttendanceController) upsert(req dto.SubmitAttendanceRequest) (dto.SubmitAttendanceResult, error) {
	now := ctl.Now()
	if req.Timestamp != nil {
		now = *req.Timestamp
	}
	today := dateOnly(now)

	// the student must exist; a stale roster on the device must not
	// produce orphan marks
	var count int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", req.StudentID).
		Count(&count).Error; err != nil {
		return dto.SubmitAttendanceResult{}, err
	}
	if count == 0 {
		return dto.SubmitAttendanceResult{}, gorm.ErrRecordNotFound
	}

	var existing model.AttendanceRecordModel
	err := ctl.DB.
		Where("attendance_record_session_id = ? AND attendance_record_student_id = ? AND attendance_record_date = ?",
			req.SessionID, req.StudentID, today).
		First(&existing).Error

	switch {
	case err == nil:
		existing.AttendanceRecordIsPresent = *req.IsPresent
		existing.AttendanceRecordTimestamp = now
		if err := ctl.DB.Save(&existing).Error; err != nil {
			return dto.SubmitAttendanceResult{}, err
		}
		return dto.SubmitAttendanceResult{
			Action:    dto.AttendanceActionUpdated,
			SessionID: req.SessionID,
			StudentID: req.StudentID,
			IsPresent: *req.IsPresent,
		}, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		m := model.AttendanceRecordModel{
			AttendanceRecordSessionID:  req.SessionID,
			AttendanceRecordStudentID:  req.StudentID,
			AttendanceRecordDate:       today,
			AttendanceRecordCourse:     req.CourseTitle,
			AttendanceRecordCourseCode: req.CourseCode,
			AttendanceRecordField:      req.FieldName,
			AttendanceRecordLevel:      req.Level,
			AttendanceRecordRoom:       req.Room,
			AttendanceRecordLecturer:   req.Lecturer,
			AttendanceRecordIsPresent:  *req.IsPresent,
			AttendanceRecordTimestamp:  now,
		}
		if err := ctl.DB.Create(&m).Error; err != nil {
			return dto.SubmitAttendanceResult{}, err
		}
		return dto.SubmitAttendanceResult{
			Action:    dto.AttendanceActionInserted,
			SessionID: req.SessionID,
			StudentID: req.StudentID,
			IsPresent: *req.IsPresent,
		}, nil

	default:
		return dto.SubmitAttendanceResult{}, err
	}
}

func dateOnly(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
