// file: internals/features/academics/fields/dto/field_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "rollcall_backend/internals/features/academics/fields/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateFieldRequest struct {
	FieldName        string   `json:"field_name" validate:"required,max=120"`
	FieldCode        string   `json:"field_code" validate:"required,max=20"`
	FieldDescription *string  `json:"field_description" validate:"omitempty,max=500"`
	FieldLevels      []string `json:"field_levels" validate:"omitempty,dive,max=40"`
}

// Update (partial)
type UpdateFieldRequest struct {
	FieldName        *string  `json:"field_name" validate:"omitempty,max=120"`
	FieldCode        *string  `json:"field_code" validate:"omitempty,max=20"`
	FieldDescription *string  `json:"field_description" validate:"omitempty,max=500"`
	FieldLevels      []string `json:"field_levels" validate:"omitempty,dive,max=40"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type FieldResponse struct {
	FieldID          uuid.UUID `json:"field_id"`
	FieldName        string    `json:"field_name"`
	FieldCode        string    `json:"field_code"`
	FieldDescription *string   `json:"field_description,omitempty"`
	FieldLevels      []string  `json:"field_levels"`
	TotalStudents    int64     `json:"total_students"`
	FieldCreatedAt   time.Time `json:"field_created_at"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateFieldRequest) ToModel() m.FieldModel {
	return m.FieldModel{
		FieldName:        r.FieldName,
		FieldCode:        r.FieldCode,
		FieldDescription: r.FieldDescription,
		FieldLevels:      pq.StringArray(r.FieldLevels),
	}
}

func (r UpdateFieldRequest) ApplyToModel(mdl *m.FieldModel) {
	if r.FieldName != nil {
		mdl.FieldName = *r.FieldName
	}
	if r.FieldCode != nil {
		mdl.FieldCode = *r.FieldCode
	}
	if r.FieldDescription != nil {
		mdl.FieldDescription = r.FieldDescription
	}
	if r.FieldLevels != nil {
		mdl.FieldLevels = pq.StringArray(r.FieldLevels)
	}
}

func NewFieldResponse(mdl m.FieldModel, totalStudents int64) FieldResponse {
	return FieldResponse{
		FieldID:          mdl.FieldID,
		FieldName:        mdl.FieldName,
		FieldCode:        mdl.FieldCode,
		FieldDescription: mdl.FieldDescription,
		FieldLevels:      []string(mdl.FieldLevels),
		TotalStudents:    totalStudents,
		FieldCreatedAt:   mdl.FieldCreatedAt,
	}
}
