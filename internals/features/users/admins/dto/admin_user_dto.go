// file: internals/features/users/admins/dto/admin_user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "rollcall_backend/internals/features/users/admins/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type CreateAdminRequest struct {
	Name       string  `json:"name" validate:"required,max=160"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8,max=72"`
	Role       string  `json:"role" validate:"omitempty,oneof=admin superadmin"`
	EmployeeID *string `json:"employee_id" validate:"omitempty,max=40"`
}

// Update (partial); password change re-hashes
type UpdateAdminRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=160"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Password   *string `json:"password" validate:"omitempty,min=8,max=72"`
	Role       *string `json:"role" validate:"omitempty,oneof=admin superadmin"`
	EmployeeID *string `json:"employee_id" validate:"omitempty,max=40"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AdminResponse struct {
	AdminUserID uuid.UUID `json:"admin_user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	EmployeeID  *string   `json:"employee_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	Admin       AdminResponse `json:"admin"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func NewAdminResponse(mdl m.AdminUserModel) AdminResponse {
	return AdminResponse{
		AdminUserID: mdl.AdminUserID,
		Name:        mdl.AdminUserName,
		Email:       mdl.AdminUserEmail,
		Role:        mdl.AdminUserRole,
		EmployeeID:  mdl.AdminUserEmployeeID,
		CreatedAt:   mdl.AdminUserCreatedAt,
	}
}
