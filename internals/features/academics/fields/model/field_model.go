package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type FieldModel struct {
	FieldID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:field_id" json:"field_id"`

	FieldName        string         `gorm:"not null;uniqueIndex;column:field_name" json:"field_name"`
	FieldCode        string         `gorm:"not null;column:field_code"              json:"field_code"`
	FieldDescription *string        `gorm:"column:field_description"                json:"field_description,omitempty"`
	FieldLevels      pq.StringArray `gorm:"type:text[];column:field_levels"         json:"field_levels"`

	FieldCreatedAt time.Time      `gorm:"column:field_created_at;autoCreateTime" json:"field_created_at"`
	FieldUpdatedAt *time.Time     `gorm:"column:field_updated_at;autoUpdateTime" json:"field_updated_at,omitempty"`
	FieldDeletedAt gorm.DeletedAt `gorm:"column:field_deleted_at;index"          json:"field_deleted_at,omitempty"`
}

func (FieldModel) TableName() string { return "fields" }
