package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

type Department struct {
	ID           uint                       `gorm:"primarykey" json:"-"`
	DepartmentID string                     `json:"department_id" gorm:"size:16;not null;uniqueIndex"`
	Name         string                     `json:"name" gorm:"not null;uniqueIndex"`
	Classes      datatypes.JSONSlice[Class] `json:"classes"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

// Class is owned by its department. StudentCount is declared by an administrator.
type Class struct {
	Name         string `json:"name"`
	StudentCount int    `json:"student_count"`
}

// HasClass matches class names case-insensitively, ignoring surrounding spaces.
func (d *Department) HasClass(name string) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, c := range d.Classes {
		if strings.ToLower(strings.TrimSpace(c.Name)) == key {
			return true
		}
	}
	return false
}
