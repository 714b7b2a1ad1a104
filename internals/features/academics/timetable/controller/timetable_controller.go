// file: internals/features/academics/timetable/controller/timetable_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rollcall_backend/internals/features/academics/timetable/dto"
	"rollcall_backend/internals/features/academics/timetable/model"
	"rollcall_backend/internals/features/academics/timetable/service"
	helper "rollcall_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type TimetableController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{DB: db, Validate: validator.New()}
}

/* =======================================================
   HANDLERS
   ======================================================= */

// List supports ?day=, ?field= and ?level= filters.
func (ctl *TimetableController) List(c *fiber.Ctx) error {
	var q dto.FilterTimetableRequest
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}

	db := ctl.DB.Model(&model.TimetableEntryModel{})
	if q.Day != "" {
		db = db.Where("timetable_entry_day = ?", q.Day)
	}
	if q.Field != "" {
		db = db.Where("timetable_entry_field = ?", q.Field)
	}
	if q.Level != "" {
		db = db.Where("timetable_entry_level = ?", q.Level)
	}

	var rows []model.TimetableEntryModel
	if err := db.Order("timetable_entry_day ASC, timetable_entry_time_slot ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load timetable")
	}
	return helper.JsonList(c, "timetable fetched", rows, nil)
}

func (ctl *TimetableController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	var m model.TimetableEntryModel
	if err := ctl.DB.First(&m, "timetable_entry_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "timetable entry not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load timetable entry")
	}
	return helper.JsonOK(c, "timetable entry fetched", m)
}

func (ctl *TimetableController) Create(c *fiber.Ctx) error {
	var req dto.CreateTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.checkConflicts(req, uuid.Nil); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check conflicts")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save timetable entry")
	}
	return helper.JsonCreated(c, "timetable entry created", m)
}

func (ctl *TimetableController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	var req dto.UpdateTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.TimetableEntryModel
	if err := ctl.DB.First(&m, "timetable_entry_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "timetable entry not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load timetable entry")
	}

	// the edited row must not collide with itself
	if err := ctl.checkConflicts(req, id); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check conflicts")
	}

	dto.ApplyToModel(req, &m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update timetable entry")
	}
	return helper.JsonUpdated(c, "timetable entry updated", m)
}

func (ctl *TimetableController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	tx := ctl.DB.Delete(&model.TimetableEntryModel{}, "timetable_entry_id = ?", id)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete timetable entry")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "timetable entry not found")
	}
	return helper.JsonDeleted(c, "timetable entry deleted", fiber.Map{"timetable_entry_id": id})
}

/* =======================================================
   HELPERS
   ======================================================= */

func (ctl *TimetableController) checkConflicts(req dto.CreateTimetableEntryRequest, excludeID uuid.UUID) error {
	// conflicts only matter within the same day + slot; no need to scan
	// the whole week
	var peers []model.TimetableEntryModel
	if err := ctl.DB.
		Where("timetable_entry_day = ? AND timetable_entry_time_slot = ?", req.Day, req.TimeSlot).
		Find(&peers).Error; err != nil {
		return err
	}
	return service.CheckConflicts(peers, req.Day, req.TimeSlot, req.Course, req.Field, req.Room, excludeID)
}
