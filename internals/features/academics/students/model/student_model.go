package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentName      string `gorm:"not null;column:student_name"                json:"student_name"`
	StudentMatricule string `gorm:"not null;uniqueIndex;column:student_matricule" json:"student_matricule"`

	// Free-text field/level pair; the session deriver joins on these with
	// exact string equality.
	StudentField string `gorm:"not null;column:student_field" json:"student_field"`
	StudentLevel string `gorm:"not null;column:student_level" json:"student_level"`

	StudentParentName  string  `gorm:"not null;column:student_parent_name"  json:"student_parent_name"`
	StudentParentPhone string  `gorm:"not null;column:student_parent_phone" json:"student_parent_phone"`
	StudentParentEmail *string `gorm:"column:student_parent_email"          json:"student_parent_email,omitempty"`
	StudentPhoto       *string `gorm:"column:student_photo"                 json:"student_photo,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index"          json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
