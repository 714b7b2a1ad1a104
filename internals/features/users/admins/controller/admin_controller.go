// file: internals/features/users/admins/controller/admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rollcall_backend/internals/features/users/admins/dto"
	"rollcall_backend/internals/features/users/admins/model"
	helper "rollcall_backend/internals/helpers"
)

/* =======================================================
   ADMIN CRUD
   ======================================================= */

type AdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Validate: validator.New()}
}

func (ctl *AdminController) List(c *fiber.Ctx) error {
	var rows []model.AdminUserModel
	if err := ctl.DB.Order("admin_user_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load admins")
	}
	out := make([]dto.AdminResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.NewAdminResponse(m))
	}
	return helper.JsonList(c, "admins fetched", out, nil)
}

func (ctl *AdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	role := req.Role
	if role == "" {
		role = "admin"
	}

	m := model.AdminUserModel{
		AdminUserName:       req.Name,
		AdminUserEmail:      req.Email,
		AdminUserPassword:   string(hash),
		AdminUserRole:       role,
		AdminUserEmployeeID: req.EmployeeID,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save admin")
	}
	return helper.JsonCreated(c, "admin created", dto.NewAdminResponse(m))
}

func (ctl *AdminController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid admin id")
	}

	var req dto.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.AdminUserModel
	if err := ctl.DB.First(&m, "admin_user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "admin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load admin")
	}

	if req.Name != nil {
		m.AdminUserName = *req.Name
	}
	if req.Email != nil {
		m.AdminUserEmail = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
		}
		m.AdminUserPassword = string(hash)
	}
	if req.Role != nil {
		m.AdminUserRole = *req.Role
	}
	if req.EmployeeID != nil {
		m.AdminUserEmployeeID = req.EmployeeID
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update admin")
	}
	return helper.JsonUpdated(c, "admin updated", dto.NewAdminResponse(m))
}

func (ctl *AdminController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid admin id")
	}

	// an admin cannot delete their own account mid-session
	if self, _ := c.Locals("admin_id").(string); self == id.String() {
		return helper.JsonError(c, fiber.StatusForbidden, "cannot delete your own account")
	}

	tx := ctl.DB.Delete(&model.AdminUserModel{}, "admin_user_id = ?", id)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete admin")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "admin not found")
	}
	return helper.JsonDeleted(c, "admin deleted", fiber.Map{"admin_user_id": id})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
