package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExamStatus string

const (
	ExamStatusPending       ExamStatus = "pending"
	ExamStatusApproved      ExamStatus = "approved"
	ExamStatusRejected      ExamStatus = "rejected"
	ExamStatusSubmitted     ExamStatus = "submitted"
	ExamStatusAutoSubmitted ExamStatus = "auto-submitted"
)

// IsSubmitted is true for both manual and automatic submissions.
func (s ExamStatus) IsSubmitted() bool {
	return s == ExamStatusSubmitted || s == ExamStatusAutoSubmitted
}

type Student struct {
	ID           uint                             `gorm:"primarykey" json:"-"`
	StudentID    string                           `json:"student_id" gorm:"size:16;not null;uniqueIndex"`
	Name         string                           `json:"name" gorm:"not null"`
	Email        string                           `json:"email" gorm:"not null;uniqueIndex"`
	Phone        string                           `json:"phone"`
	RollNo       string                           `json:"roll_no"`
	DepartmentID string                           `json:"department_id" gorm:"size:16;index"`
	Class        string                           `json:"class" gorm:"column:class_name"`
	Exams        datatypes.JSONSlice[StudentExam] `json:"exams"`
	Version      int                              `json:"-" gorm:"not null"`
	CreatedAt    time.Time                        `json:"created_at"`
	UpdatedAt    time.Time                        `json:"updated_at"`
}

// StudentExam is one student's attempt at one subject.
type StudentExam struct {
	SubjectID       string           `json:"subject_id"`
	Set             *string          `json:"set"`
	Status          ExamStatus       `json:"status"`
	ExamStartTime   *time.Time       `json:"exam_start_time"`
	ExamEndTime     *time.Time       `json:"exam_end_time"`
	SelectedAnswers []SelectedAnswer `json:"selected_answers"`
	Score           int              `json:"score"`
	TotalScore      int              `json:"total_score"`
}

type SelectedAnswer struct {
	QuestionID       string `json:"question_id"`
	SelectedAnswerID string `json:"selected_answer_id"`
	IsCorrect        bool   `json:"is_correct"`
	Score            int    `json:"score"`
}

// NewStudentExam returns a fresh pending attempt with no set and no answers.
func NewStudentExam(subjectID string) StudentExam {
	return StudentExam{
		SubjectID:       subjectID,
		Status:          ExamStatusPending,
		SelectedAnswers: []SelectedAnswer{},
	}
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	if s.Exams == nil {
		s.Exams = datatypes.JSONSlice[StudentExam]{}
	}
	return nil
}

// ExamIndex returns the position of the exam for subjectID, or -1.
func (s *Student) ExamIndex(subjectID string) int {
	for i := range s.Exams {
		if s.Exams[i].SubjectID == subjectID {
			return i
		}
	}
	return -1
}
