package service

import (
	"context"
	"time"

	"github.com/lshigami/examdesk/internal/apperror"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/model"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

// ExamSubmissionService runs the candidate side of an exam: starting it,
// reading the paper, submitting answers and reading the result.
type ExamSubmissionService interface {
	StartExam(ctx context.Context, req dto.ExamStartDTO) (*dto.ExamResultDTO, error)
	SubmitExam(ctx context.Context, req dto.ExamSubmitDTO) (*dto.ExamResultDTO, error)
	GetStudentExam(ctx context.Context, email, subjectID string) (*dto.ExamResultDTO, error)
	GetExamPaper(ctx context.Context, email, subjectID string) (*dto.ExamPaperDTO, error)
}

type examSubmissionService struct {
	studentRepo      repository.StudentRepository
	bankRepo         repository.QuestionBankRepository
	unscopedFallback bool
	now              func() time.Time
}

// NewExamSubmissionService builds the service. With unscopedFallback set, a
// student without an assigned set is graded against the whole question bank.
func NewExamSubmissionService(studentRepo repository.StudentRepository, bankRepo repository.QuestionBankRepository, unscopedFallback bool) ExamSubmissionService {
	return &examSubmissionService{
		studentRepo:      studentRepo,
		bankRepo:         bankRepo,
		unscopedFallback: unscopedFallback,
		now:              time.Now,
	}
}

func (s *examSubmissionService) StartExam(ctx context.Context, req dto.ExamStartDTO) (*dto.ExamResultDTO, error) {
	student, err := mutateStudentExams(ctx, s.studentRepo, req.StudentEmail, func(st *model.Student) error {
		exam, err := studentExam(st, req.SubjectID)
		if err != nil {
			return err
		}
		if exam.Status.IsSubmitted() {
			return apperror.Conflict(apperror.CodeAlreadySubmitted, "exam for subject %s is already submitted", req.SubjectID)
		}
		if exam.Status != model.ExamStatusPending {
			return apperror.Precondition(apperror.CodeInvalidInput,
				"exam for subject %s cannot be started in status %q", req.SubjectID, exam.Status)
		}
		if exam.ExamStartTime == nil {
			now := s.now()
			exam.ExamStartTime = &now
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("studentID", student.StudentID).Str("subjectID", req.SubjectID).Msg("Exam started")
	return resultOf(student, req.SubjectID), nil
}

// SubmitExam grades the answers against the student's set and records the
// outcome. Either every answer is recorded or nothing changes.
func (s *examSubmissionService) SubmitExam(ctx context.Context, req dto.ExamSubmitDTO) (*dto.ExamResultDTO, error) {
	var (
		bank   *model.QuestionBank
		result *ScoreResult
	)
	student, err := mutateStudentExams(ctx, s.studentRepo, req.StudentEmail, func(st *model.Student) error {
		exam, err := studentExam(st, req.SubjectID)
		if err != nil {
			return err
		}
		if exam.Status.IsSubmitted() {
			return apperror.Conflict(apperror.CodeAlreadySubmitted, "exam for subject %s is already submitted", req.SubjectID)
		}

		if bank == nil {
			if bank, err = s.findBank(ctx, req.SubjectID); err != nil {
				return err
			}
		}
		pool, err := s.questionPool(bank, exam)
		if err != nil {
			return err
		}
		if result, err = ScoreAnswers(pool, req.SelectedAnswers); err != nil {
			return err
		}

		now := s.now()
		if exam.ExamStartTime == nil {
			exam.ExamStartTime = &now
		}
		exam.ExamEndTime = &now
		exam.SelectedAnswers = result.Answers
		exam.Score = result.Score
		exam.TotalScore = result.TotalScore
		exam.Status = model.ExamStatusSubmitted
		return nil
	})
	if err != nil {
		if apperror.KindOf(err) == apperror.KindValidation {
			log.Warn().Err(err).Str("email", req.StudentEmail).Str("subjectID", req.SubjectID).Msg("Submission rejected")
		}
		return nil, err
	}

	log.Info().
		Str("studentID", student.StudentID).
		Str("subjectID", req.SubjectID).
		Int("score", result.Score).
		Int("totalScore", result.TotalScore).
		Msg("Exam submitted")
	return resultOf(student, req.SubjectID), nil
}

func (s *examSubmissionService) GetStudentExam(ctx context.Context, email, subjectID string) (*dto.ExamResultDTO, error) {
	student, err := findStudentByEmail(ctx, s.studentRepo, email)
	if err != nil {
		return nil, err
	}
	if _, err := studentExam(student, subjectID); err != nil {
		return nil, err
	}
	return resultOf(student, subjectID), nil
}

// GetExamPaper returns the questions of the student's set in paper order,
// without correct answers.
func (s *examSubmissionService) GetExamPaper(ctx context.Context, email, subjectID string) (*dto.ExamPaperDTO, error) {
	student, err := findStudentByEmail(ctx, s.studentRepo, email)
	if err != nil {
		return nil, err
	}
	exam, err := studentExam(student, subjectID)
	if err != nil {
		return nil, err
	}
	bank, err := s.findBank(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	pool, err := s.questionPool(bank, exam)
	if err != nil {
		return nil, err
	}

	paper := &dto.ExamPaperDTO{
		SubjectID:      subjectID,
		Status:         string(exam.Status),
		TotalQuestions: len(pool),
		Questions:      make([]dto.PaperQuestionDTO, len(pool)),
	}
	if exam.Set != nil {
		paper.Set = *exam.Set
	}
	for i, q := range pool {
		options := make([]dto.PaperOptionDTO, len(q.AnswerOptions))
		for j, o := range q.AnswerOptions {
			options[j] = dto.PaperOptionDTO{ID: o.ID, Text: o.Text}
		}
		paper.Questions[i] = dto.PaperQuestionDTO{
			QuestionID:    q.QuestionID,
			QuestionText:  q.QuestionText,
			AnswerOptions: options,
			Score:         q.Score,
			SetIndex:      q.SetIndex,
		}
		paper.TotalScore += q.Score
	}
	return paper, nil
}

func (s *examSubmissionService) findBank(ctx context.Context, subjectID string) (*model.QuestionBank, error) {
	bank, err := s.bankRepo.FindBySubjectID(ctx, subjectID)
	if err != nil {
		return nil, storeFailure(err, "find question bank")
	}
	if bank == nil {
		return nil, apperror.NotFound("question bank for subject %s not found", subjectID)
	}
	return bank, nil
}

// questionPool is the set of questions an exam is answered against.
func (s *examSubmissionService) questionPool(bank *model.QuestionBank, exam *model.StudentExam) ([]model.Question, error) {
	if exam.Set != nil {
		return bank.QuestionsInSet(*exam.Set), nil
	}
	if !s.unscopedFallback {
		return nil, apperror.Precondition(apperror.CodeSetNotAssigned,
			"no set assigned for subject %s", exam.SubjectID)
	}
	log.Warn().Str("subjectID", exam.SubjectID).Msg("No set assigned, using the whole question bank")
	return bank.Questions, nil
}

// studentExam returns a pointer into st.Exams so callers can edit in place.
func studentExam(st *model.Student, subjectID string) (*model.StudentExam, error) {
	idx := st.ExamIndex(subjectID)
	if idx < 0 {
		return nil, apperror.New(apperror.KindNotFound, apperror.CodeNoExamFound,
			"no exam found for subject %s", subjectID)
	}
	return &st.Exams[idx], nil
}

func resultOf(st *model.Student, subjectID string) *dto.ExamResultDTO {
	exam, _ := studentExam(st, subjectID)
	return &dto.ExamResultDTO{
		StudentID: st.StudentID,
		Email:     st.Email,
		Exam:      toStudentExamDTO(exam),
	}
}
