package dto

// ExamAssignDTO grants one student an exam for a subject.
type ExamAssignDTO struct {
	StudentEmail string `json:"student_email" binding:"required"`
	SubjectID    string `json:"subject_id" binding:"required"`
}

type ExamBatchAssignDTO struct {
	SubjectID     string   `json:"subject_id" binding:"required"`
	StudentEmails []string `json:"student_emails" binding:"required,min=1"`
}

type ExamAssignResponseDTO struct {
	StudentID string           `json:"student_id"`
	Email     string           `json:"email"`
	Exams     []StudentExamDTO `json:"exams"`
}

// BatchFailureDTO names a student whose assignment hit an unexpected error.
type BatchFailureDTO struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// ExamBatchAssignResponseDTO classifies every requested email exactly once,
// each bucket in request order.
type ExamBatchAssignResponseDTO struct {
	SubjectID     string            `json:"subject_id"`
	Success       []string          `json:"success"`
	AlreadyExists []string          `json:"already_exists"`
	NotFound      []string          `json:"not_found"`
	Failed        []BatchFailureDTO `json:"failed"`
}

type SetAssignDTO struct {
	SetName       string   `json:"set_name" binding:"required"`
	StudentEmails []string `json:"student_emails" binding:"required,min=1"`
}

type SetAssignResponseDTO struct {
	SubjectID    string   `json:"subject_id"`
	Set          string   `json:"set"`
	UpdatedCount int      `json:"updated_count"`
	Updated      []string `json:"updated"`
}

type AnswerSubmitDTO struct {
	QuestionID       string `json:"question_id" binding:"required"`
	SelectedAnswerID string `json:"selected_answer_id" binding:"required"`
}

type ExamSubmitDTO struct {
	StudentEmail    string            `json:"student_email" binding:"required"`
	SubjectID       string            `json:"subject_id" binding:"required"`
	SelectedAnswers []AnswerSubmitDTO `json:"selected_answers" binding:"required,dive"`
}

type ExamStartDTO struct {
	StudentEmail string `json:"student_email" binding:"required"`
	SubjectID    string `json:"subject_id" binding:"required"`
}

type ExamResultDTO struct {
	StudentID string         `json:"student_id"`
	Email     string         `json:"email"`
	Exam      StudentExamDTO `json:"exam"`
}

type PaperOptionDTO struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type PaperQuestionDTO struct {
	QuestionID    string           `json:"question_id"`
	QuestionText  string           `json:"question_text"`
	AnswerOptions []PaperOptionDTO `json:"answer_options"`
	Score         int              `json:"score"`
	SetIndex      int              `json:"set_index"`
}

// ExamPaperDTO is what a candidate sees: no answer keys.
type ExamPaperDTO struct {
	SubjectID      string             `json:"subject_id"`
	Set            string             `json:"set"`
	Status         string             `json:"status"`
	TotalQuestions int                `json:"total_questions"`
	TotalScore     int                `json:"total_score"`
	Questions      []PaperQuestionDTO `json:"questions"`
}
