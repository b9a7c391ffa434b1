package dto

import "time"

type QuestionBankCreateDTO struct {
	SubjectID string `json:"subject_id" binding:"required"`
	Class     string `json:"class" binding:"required"`
}

type AnswerOptionCreateDTO struct {
	Text string `json:"text" binding:"required"`
}

// QuestionCreateDTO references its correct option by the letter the option
// will receive from its position ("A" for the first option).
type QuestionCreateDTO struct {
	QuestionText    string                  `json:"question_text" binding:"required"`
	AnswerOptions   []AnswerOptionCreateDTO `json:"answer_options" binding:"required,min=2,dive"`
	CorrectAnswerID string                  `json:"correct_answer_id" binding:"required"`
	Score           int                     `json:"score" binding:"omitempty,min=1"`
	Set             string                  `json:"set" binding:"required"`
}

type AddQuestionsDTO struct {
	Questions []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

type QuestionUpdateDTO struct {
	QuestionText    *string                 `json:"question_text"`
	AnswerOptions   []AnswerOptionCreateDTO `json:"answer_options" binding:"omitempty,min=2,dive"`
	CorrectAnswerID *string                 `json:"correct_answer_id"`
	Score           *int                    `json:"score" binding:"omitempty,min=1"`
	Set             *string                 `json:"set"`
}

type AnswerOptionDTO struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type QuestionResponseDTO struct {
	QuestionID      string            `json:"question_id"`
	QuestionText    string            `json:"question_text"`
	AnswerOptions   []AnswerOptionDTO `json:"answer_options" copier:"-"`
	CorrectAnswerID string            `json:"correct_answer_id"`
	Score           int               `json:"score"`
	Set             string            `json:"set"`
	SetIndex        int               `json:"set_index"`
}

type QuestionBankResponseDTO struct {
	ExamID         string                `json:"exam_id"`
	SubjectID      string                `json:"subject_id"`
	Class          string                `json:"class"`
	TotalQuestions int                   `json:"total_questions"`
	Questions      []QuestionResponseDTO `json:"questions,omitempty" copier:"-"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type SetQuestionsResponseDTO struct {
	ExamID         string                `json:"exam_id"`
	SubjectID      string                `json:"subject_id"`
	Set            string                `json:"set,omitempty"`
	TotalQuestions int                   `json:"total_questions"`
	Questions      []QuestionResponseDTO `json:"questions"`
}

type SetQuestionCountDTO struct {
	Set            string `json:"set"`
	TotalQuestions int    `json:"total_questions"`
	TotalScore     int    `json:"total_score"`
}
