package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// SubjectStatusActive is the only status that allows exam assignment.
const SubjectStatusActive = "Active"

type Subject struct {
	ID            uint                     `gorm:"primarykey" json:"-"`
	SubjectID     string                   `json:"subject_id" gorm:"size:16;not null;uniqueIndex"`
	Name          string                   `json:"name" gorm:"not null"`
	Class         string                   `json:"class" gorm:"column:class_name"`
	TeacherName   string                   `json:"teacher_name"`
	DepartmentID  string                   `json:"department_id" gorm:"size:16;index"`
	Status        string                   `json:"status"`
	TotalStudents int                      `json:"total_students" gorm:"not null;default:0"`
	Sets          datatypes.JSONSlice[Set] `json:"sets"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

// Set is a named partition of a subject's students and question paper.
type Set struct {
	Name     string `json:"name"`
	Students int    `json:"students"`
}

func (s *Subject) IsActive() bool {
	return s.Status == SubjectStatusActive
}

// FindSet looks a set up by name, case-insensitively.
func (s *Subject) FindSet(name string) (Set, bool) {
	key := SetKey(name)
	for _, set := range s.Sets {
		if SetKey(set.Name) == key {
			return set, true
		}
	}
	return Set{}, false
}

// SetKey is the comparison form of a set name.
func SetKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
