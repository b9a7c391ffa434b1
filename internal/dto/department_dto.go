package dto

import "time"

type ClassDTO struct {
	Name         string `json:"name" binding:"required"`
	StudentCount int    `json:"student_count" binding:"min=0"`
}

type DepartmentCreateDTO struct {
	Name    string     `json:"name" binding:"required"`
	Classes []ClassDTO `json:"classes" binding:"omitempty,dive"`
}

// DepartmentUpdateDTO replaces only the fields that are present.
type DepartmentUpdateDTO struct {
	Name    *string    `json:"name"`
	Classes []ClassDTO `json:"classes" binding:"omitempty,dive"`
}

type AddClassesDTO struct {
	Classes []ClassDTO `json:"classes" binding:"required,min=1,dive"`
}

type DepartmentResponseDTO struct {
	DepartmentID string     `json:"department_id"`
	Name         string     `json:"name"`
	Classes      []ClassDTO `json:"classes" copier:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type AddClassesResponseDTO struct {
	Department DepartmentResponseDTO `json:"department"`
	Added      []string              `json:"added"`
	Skipped    []string              `json:"skipped"`
}
