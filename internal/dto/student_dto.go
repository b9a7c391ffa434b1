package dto

import "time"

type StudentCreateDTO struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone"`
	RollNo       string `json:"roll_no"`
	DepartmentID string `json:"department_id"`
	Class        string `json:"class"`
}

type StudentBatchCreateDTO struct {
	Students []StudentCreateDTO `json:"students" binding:"required,min=1,dive"`
}

type SelectedAnswerDTO struct {
	QuestionID       string `json:"question_id"`
	SelectedAnswerID string `json:"selected_answer_id"`
	IsCorrect        bool   `json:"is_correct"`
	Score            int    `json:"score"`
}

type StudentExamDTO struct {
	SubjectID       string              `json:"subject_id"`
	Set             *string             `json:"set"`
	Status          string              `json:"status"`
	ExamStartTime   *time.Time          `json:"exam_start_time"`
	ExamEndTime     *time.Time          `json:"exam_end_time"`
	SelectedAnswers []SelectedAnswerDTO `json:"selected_answers" copier:"-"`
	Score           int                 `json:"score"`
	TotalScore      int                 `json:"total_score"`
	Percentage      float64             `json:"percentage"`
}

type StudentResponseDTO struct {
	StudentID    string           `json:"student_id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	RollNo       string           `json:"roll_no"`
	DepartmentID string           `json:"department_id"`
	Class        string           `json:"class"`
	Exams        []StudentExamDTO `json:"exams" copier:"-"`
	CreatedAt    time.Time        `json:"created_at"`
}
