// file: internals/features/rollcall/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	studentModel "rollcall_backend/internals/features/academics/students/model"
	timetableModel "rollcall_backend/internals/features/academics/timetable/model"
	"rollcall_backend/internals/features/rollcall/sessions/dto"
	"rollcall_backend/internals/features/rollcall/sessions/model"
	"rollcall_backend/internals/features/rollcall/sessions/service"
	helper "rollcall_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db, Validate: validator.New(), Now: time.Now}
}

/* =======================================================
   HANDLERS
   ======================================================= */

// GetCurrent derives the sessions visible right now from the timetable
// and roster, then drops the ones already completed today. Nothing is
// persisted; refreshing re-derives from scratch.
func (ctl *SessionController) GetCurrent(c *fiber.Ctx) error {
	now := ctl.Now()

	var entries []timetableModel.TimetableEntryModel
	if err := ctl.DB.Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load timetable")
	}

	var students []studentModel.StudentModel
	if err := ctl.DB.Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load students")
	}

	sessions := service.DeriveSessions(entries, students, now)

	completed, err := ctl.completedSessionIDs(now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load completed sessions")
	}

	out := make([]dto.Session, 0, len(sessions))
	for _, s := range sessions {
		if _, done := completed[s.ID]; done {
			continue
		}
		out = append(out, s)
	}

	return helper.JsonOK(c, "current sessions", fiber.Map{
		"sessions":     out,
		"generated_at": now,
	})
}

// Complete marks a derived session as done for today. Re-submitting the
// same session on the same day is a no-op, not an error.
func (ctl *SessionController) Complete(c *fiber.Ctx) error {
	var req dto.CompleteSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	today := dateOnly(ctl.Now())

	var existing model.SessionCompletionModel
	err := ctl.DB.
		Where("session_completion_session_id = ? AND session_completion_date = ?", req.SessionID, today).
		First(&existing).Error
	if err == nil {
		return helper.JsonOK(c, "session already completed", existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check completion")
	}

	m := model.SessionCompletionModel{
		SessionCompletionSessionID: req.SessionID,
		SessionCompletionField:     req.Field,
		SessionCompletionLevel:     req.Level,
		SessionCompletionDay:       req.Day,
		SessionCompletionDate:      today,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		// a concurrent submit can win the race; re-read and report it
		if err2 := ctl.DB.
			Where("session_completion_session_id = ? AND session_completion_date = ?", req.SessionID, today).
			First(&existing).Error; err2 == nil {
			return helper.JsonOK(c, "session already completed", existing)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save completion")
	}

	return helper.JsonCreated(c, "session completed", m)
}

// ListCompleted returns today's completions (or a given ?date=YYYY-MM-DD).
func (ctl *SessionController) ListCompleted(c *fiber.Ctx) error {
	day := ctl.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		}
		day = parsed
	}

	var rows []model.SessionCompletionModel
	if err := ctl.DB.
		Where("session_completion_date = ?", dateOnly(day)).
		Order("session_completion_completed_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load completions")
	}
	return helper.JsonList(c, "completed sessions", rows, nil)
}

/* =======================================================
   HELPERS
   ======================================================= */

func (ctl *SessionController) completedSessionIDs(now time.Time) (map[string]struct{}, error) {
	var rows []model.SessionCompletionModel
	if err := ctl.DB.
		Select("session_completion_session_id").
		Where("session_completion_date = ?", dateOnly(now)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		ids[r.SessionCompletionSessionID] = struct{}{}
	}
	return ids, nil
}

func dateOnly(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
