// file: internals/features/users/admins/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rollcall_backend/internals/features/users/admins/dto"
	"rollcall_backend/internals/features/users/admins/model"
	helper "rollcall_backend/internals/helpers"
)

/* =======================================================
   AUTH CONTROLLER
   ======================================================= */

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// Login exchanges email + password for a signed access token. Unknown
// email and wrong password answer identically.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var admin model.AdminUserModel
	if err := ctl.DB.First(&admin, "admin_user_email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminUserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	token, err := helper.CreateAdminToken(admin.AdminUserID, admin.AdminUserEmail, admin.AdminUserRole)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return helper.JsonOK(c, "login successful", dto.LoginResponse{
		AccessToken: token,
		Admin:       dto.NewAdminResponse(admin),
	})
}

// Me returns the account behind the presented token.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	adminID, _ := c.Locals("admin_id").(string)
	if adminID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing admin identity")
	}

	var admin model.AdminUserModel
	if err := ctl.DB.First(&admin, "admin_user_id = ?", adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "account no longer exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load account")
	}
	return helper.JsonOK(c, "profile fetched", dto.NewAdminResponse(admin))
}
