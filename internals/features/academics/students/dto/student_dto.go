// file: internals/features/academics/students/dto/student_dto.go
package dto

import (
	m "rollcall_backend/internals/features/academics/students/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateStudentRequest struct {
	StudentName      string  `json:"student_name" validate:"required,max=160"`
	StudentMatricule string  `json:"student_matricule" validate:"required,max=40"`
	StudentField     string  `json:"student_field" validate:"required,max=120"`
	StudentLevel     string  `json:"student_level" validate:"required,max=40"`
	ParentName       string  `json:"parent_name" validate:"required,max=160"`
	ParentPhone      string  `json:"parent_phone" validate:"required,max=30"`
	ParentEmail      *string `json:"parent_email" validate:"omitempty,email"`
	Photo            *string `json:"photo" validate:"omitempty,url"`
}

// Update (partial)
type UpdateStudentRequest struct {
	StudentName      *string `json:"student_name" validate:"omitempty,max=160"`
	StudentMatricule *string `json:"student_matricule" validate:"omitempty,max=40"`
	StudentField     *string `json:"student_field" validate:"omitempty,max=120"`
	StudentLevel     *string `json:"student_level" validate:"omitempty,max=40"`
	ParentName       *string `json:"parent_name" validate:"omitempty,max=160"`
	ParentPhone      *string `json:"parent_phone" validate:"omitempty,max=30"`
	ParentEmail      *string `json:"parent_email" validate:"omitempty,email"`
	Photo            *string `json:"photo" validate:"omitempty,url"`
}

// Bulk import (CSV rows already parsed client-side)
type BulkCreateStudentsRequest struct {
	Students []CreateStudentRequest `json:"students" validate:"required,min=1,dive"`
}

// Filter / List (query)
type FilterStudentsRequest struct {
	Field  string `query:"field"`
	Level  string `query:"level"`
	Search string `query:"search"` // name or matricule
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateStudentRequest) ToModel() m.StudentModel {
	return m.StudentModel{
		StudentName:        r.StudentName,
		StudentMatricule:   r.StudentMatricule,
		StudentField:       r.StudentField,
		StudentLevel:       r.StudentLevel,
		StudentParentName:  r.ParentName,
		StudentParentPhone: r.ParentPhone,
		StudentParentEmail: r.ParentEmail,
		StudentPhoto:       r.Photo,
	}
}

func (r UpdateStudentRequest) ApplyToModel(mdl *m.StudentModel) {
	if r.StudentName != nil {
		mdl.StudentName = *r.StudentName
	}
	if r.StudentMatricule != nil {
		mdl.StudentMatricule = *r.StudentMatricule
	}
	if r.StudentField != nil {
		mdl.StudentField = *r.StudentField
	}
	if r.StudentLevel != nil {
		mdl.StudentLevel = *r.StudentLevel
	}
	if r.ParentName != nil {
		mdl.StudentParentName = *r.ParentName
	}
	if r.ParentPhone != nil {
		mdl.StudentParentPhone = *r.ParentPhone
	}
	if r.ParentEmail != nil {
		mdl.StudentParentEmail = r.ParentEmail
	}
	if r.Photo != nil {
		mdl.StudentPhoto = r.Photo
	}
}
