package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUserModel is a staff account allowed into the admin surface.
type AdminUserModel struct {
	AdminUserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admin_user_id" json:"admin_user_id"`

	AdminUserName  string `gorm:"not null;column:admin_user_name" json:"admin_user_name"`
	AdminUserEmail string `gorm:"not null;uniqueIndex;column:admin_user_email" json:"admin_user_email"`

	// bcrypt hash, never serialized
	AdminUserPassword string `gorm:"not null;column:admin_user_password" json:"-"`

	AdminUserRole       string  `gorm:"not null;default:'admin';column:admin_user_role" json:"admin_user_role"`
	AdminUserEmployeeID *string `gorm:"column:admin_user_employee_id" json:"admin_user_employee_id,omitempty"`

	AdminUserCreatedAt time.Time      `gorm:"column:admin_user_created_at;autoCreateTime" json:"admin_user_created_at"`
	AdminUserUpdatedAt time.Time      `gorm:"column:admin_user_updated_at;autoUpdateTime" json:"admin_user_updated_at"`
	AdminUserDeletedAt gorm.DeletedAt `gorm:"column:admin_user_deleted_at;index" json:"-"`
}

func (AdminUserModel) TableName() string { return "admin_users" }
