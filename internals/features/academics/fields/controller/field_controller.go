// file: internals/features/academics/fields/controller/field_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rollcall_backend/internals/features/academics/fields/dto"
	"rollcall_backend/internals/features/academics/fields/model"
	studentModel "rollcall_backend/internals/features/academics/students/model"
	helper "rollcall_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type FieldController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFieldController(db *gorm.DB) *FieldController {
	return &FieldController{DB: db, Validate: validator.New()}
}

/* =======================================================
   HANDLERS
   ======================================================= */

// List returns every field with its live student count.
func (ctl *FieldController) List(c *fiber.Ctx) error {
	var rows []model.FieldModel
	if err := ctl.DB.Order("field_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load fields")
	}

	counts, err := ctl.studentCountsByField()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count students")
	}

	out := make([]dto.FieldResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.NewFieldResponse(m, counts[m.FieldName]))
	}
	return helper.JsonList(c, "fields fetched", out, nil)
}

func (ctl *FieldController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid field id")
	}

	var m model.FieldModel
	if err := ctl.DB.First(&m, "field_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "field not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load field")
	}

	var total int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_field = ?", m.FieldName).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count students")
	}

	return helper.JsonOK(c, "field fetched", dto.NewFieldResponse(m, total))
}

func (ctl *FieldController) Create(c *fiber.Ctx) error {
	var req dto.CreateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.FieldName = strings.TrimSpace(req.FieldName)
	req.FieldCode = strings.TrimSpace(req.FieldCode)
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "a field with this name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save field")
	}
	return helper.JsonCreated(c, "field created", dto.NewFieldResponse(m, 0))
}

func (ctl *FieldController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid field id")
	}

	var req dto.UpdateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.FieldModel
	if err := ctl.DB.First(&m, "field_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "field not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load field")
	}

	req.ApplyToModel(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "a field with this name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update field")
	}

	var total int64
	ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_field = ?", m.FieldName).
		Count(&total)

	return helper.JsonUpdated(c, "field updated", dto.NewFieldResponse(m, total))
}

func (ctl *FieldController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid field id")
	}

	tx := ctl.DB.Delete(&model.FieldModel{}, "field_id = ?", id)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete field")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "field not found")
	}
	return helper.JsonDeleted(c, "field deleted", fiber.Map{"field_id": id})
}

/* =======================================================
   HELPERS
   ======================================================= */

func (ctl *FieldController) studentCountsByField() (map[string]int64, error) {
	type row struct {
		StudentField string
		Total        int64
	}
	var rows []row
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Select("student_field, COUNT(*) AS total").
		Group("student_field").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.StudentField] = r.Total
	}
	return counts, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
