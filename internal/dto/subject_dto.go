package dto

import "time"

type SetDTO struct {
	Name     string `json:"name" binding:"required"`
	Students int    `json:"students" binding:"min=0"`
}

type SubjectCreateDTO struct {
	Name          string   `json:"name" binding:"required"`
	Class         string   `json:"class" binding:"required"`
	TeacherName   string   `json:"teacher_name"`
	DepartmentID  string   `json:"department_id" binding:"required"`
	Status        string   `json:"status"`
	TotalStudents int      `json:"total_students" binding:"min=0"`
	AutoCalculate bool     `json:"auto_calculate"`
	Sets          []SetDTO `json:"sets" binding:"required,min=1,dive"`
}

// SubjectUpdateDTO changes only the fields that are present. When Sets is
// present the set list is validated like on creation; TotalStudents alone must
// match the sum of the stored sets unless AutoCalculate is set.
type SubjectUpdateDTO struct {
	Name          *string  `json:"name"`
	Class         *string  `json:"class"`
	TeacherName   *string  `json:"teacher_name"`
	DepartmentID  *string  `json:"department_id"`
	Status        *string  `json:"status"`
	TotalStudents *int     `json:"total_students" binding:"omitempty,min=0"`
	AutoCalculate bool     `json:"auto_calculate"`
	Sets          []SetDTO `json:"sets" binding:"omitempty,min=1,dive"`
}

type SetsReplaceDTO struct {
	Sets          []SetDTO `json:"sets" binding:"required,min=1,dive"`
	AutoCalculate bool     `json:"auto_calculate"`
}

type SubjectResponseDTO struct {
	SubjectID     string    `json:"subject_id"`
	Name          string    `json:"name"`
	Class         string    `json:"class"`
	TeacherName   string    `json:"teacher_name"`
	DepartmentID  string    `json:"department_id"`
	Status        string    `json:"status"`
	TotalStudents int       `json:"total_students"`
	Sets          []SetDTO  `json:"sets" copier:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SetsResponseDTO struct {
	SubjectID     string   `json:"subject_id"`
	Sets          []SetDTO `json:"sets"`
	TotalStudents int      `json:"total_students"`
}

type TotalStudentsResponseDTO struct {
	SubjectID     string `json:"subject_id"`
	TotalStudents int    `json:"total_students"`
}
