// file: internals/features/academics/students/controller/student_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rollcall_backend/internals/features/academics/students/dto"
	"rollcall_backend/internals/features/academics/students/model"
	helper "rollcall_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

/* =======================================================
   HANDLERS
   ======================================================= */

// List supports ?field=, ?level= and ?search= (name or matricule), paged.
func (ctl *StudentController) List(c *fiber.Ctx) error {
	var q dto.FilterStudentsRequest
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}

	p := helper.ResolvePaging(c, 50, 200)

	db := ctl.DB.Model(&model.StudentModel{})
	if q.Field != "" {
		db = db.Where("student_field = ?", q.Field)
	}
	if q.Level != "" {
		db = db.Where("student_level = ?", q.Level)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where("(LOWER(student_name) LIKE ? OR LOWER(student_matricule) LIKE ?)", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count students")
	}

	var rows []model.StudentModel
	if err := db.Order("student_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load students")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "students fetched", rows, &pg)
}

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var m model.StudentModel
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load student")
	}
	return helper.JsonOK(c, "student fetched", m)
}

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.StudentMatricule = strings.TrimSpace(req.StudentMatricule)
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "matricule already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save student")
	}
	return helper.JsonCreated(c, "student created", m)
}

// BulkCreate imports many students in one call. Rows are independent:
// a duplicate matricule fails its own row without aborting the rest.
func (ctl *StudentController) BulkCreate(c *fiber.Ctx) error {
	var req dto.BulkCreateStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	saved := make([]model.StudentModel, 0, len(req.Students))
	failed := make([]fiber.Map, 0)

	for i, r := range req.Students {
		m := r.ToModel()
		if err := ctl.DB.Create(&m).Error; err != nil {
			reason := "failed to save"
			if isUniqueViolation(err) {
				reason = "matricule already registered"
			}
			failed = append(failed, fiber.Map{
				"index":     i,
				"matricule": r.StudentMatricule,
				"reason":    reason,
			})
			continue
		}
		saved = append(saved, m)
	}

	return helper.JsonCreated(c,
		fmt.Sprintf("%d students imported, %d failed", len(saved), len(failed)),
		fiber.Map{"saved": saved, "failed": failed},
	)
}

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.StudentModel
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load student")
	}

	req.ApplyToModel(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "matricule already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update student")
	}
	return helper.JsonUpdated(c, "student updated", m)
}

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	tx := ctl.DB.Delete(&model.StudentModel{}, "student_id = ?", id)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete student")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": id})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
