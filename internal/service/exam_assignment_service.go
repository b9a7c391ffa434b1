package service

import (
	"context"
	"strings"

	"github.com/lshigami/examdesk/internal/apperror"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/model"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/iter"
)

// ExamAssignmentService grants exams to students and places them in sets.
type ExamAssignmentService interface {
	AssignExam(ctx context.Context, req dto.ExamAssignDTO) (*dto.ExamAssignResponseDTO, error)
	// AssignExamBatch never fails because of a single student; each email is
	// reported in exactly one bucket.
	AssignExamBatch(ctx context.Context, req dto.ExamBatchAssignDTO) (*dto.ExamBatchAssignResponseDTO, error)
	AssignSet(ctx context.Context, subjectID string, req dto.SetAssignDTO) (*dto.SetAssignResponseDTO, error)
}

type examAssignmentService struct {
	subjectRepo      repository.SubjectRepository
	studentRepo      repository.StudentRepository
	batchConcurrency int
}

func NewExamAssignmentService(subjectRepo repository.SubjectRepository, studentRepo repository.StudentRepository, batchConcurrency int) ExamAssignmentService {
	if batchConcurrency < 1 {
		batchConcurrency = 1
	}
	return &examAssignmentService{
		subjectRepo:      subjectRepo,
		studentRepo:      studentRepo,
		batchConcurrency: batchConcurrency,
	}
}

func (s *examAssignmentService) AssignExam(ctx context.Context, req dto.ExamAssignDTO) (*dto.ExamAssignResponseDTO, error) {
	subject, err := s.activeSubject(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}
	student, err := s.assignOne(ctx, subject.SubjectID, req.StudentEmail)
	if err != nil {
		return nil, err
	}

	log.Info().Str("studentID", student.StudentID).Str("subjectID", subject.SubjectID).Msg("Exam assigned")
	return &dto.ExamAssignResponseDTO{
		StudentID: student.StudentID,
		Email:     student.Email,
		Exams:     toStudentExamDTOs(student.Exams),
	}, nil
}

type assignOutcome int

const (
	outcomeSuccess assignOutcome = iota
	outcomeAlreadyExists
	outcomeNotFound
	outcomeFailed
)

type assignResult struct {
	outcome assignOutcome
	err     error
}

func (s *examAssignmentService) AssignExamBatch(ctx context.Context, req dto.ExamBatchAssignDTO) (*dto.ExamBatchAssignResponseDTO, error) {
	subject, err := s.activeSubject(ctx, req.SubjectID)
	if apperror.HasCode(err, apperror.CodeInactiveSubject) {
		// The batch endpoint reports an unusable subject as missing.
		return nil, apperror.New(apperror.KindNotFound, apperror.CodeInactiveSubject,
			"subject %s not found or inactive", req.SubjectID)
	}
	if err != nil {
		return nil, err
	}

	// A repeated email is only processed at its first position.
	emails := make([]string, len(req.StudentEmails))
	firstAt := make(map[string]int, len(req.StudentEmails))
	var unique []string
	for i, raw := range req.StudentEmails {
		emails[i] = strings.ToLower(strings.TrimSpace(raw))
		if _, ok := firstAt[emails[i]]; !ok {
			firstAt[emails[i]] = len(unique)
			unique = append(unique, emails[i])
		}
	}

	mapper := iter.Mapper[string, assignResult]{MaxGoroutines: s.batchConcurrency}
	results := mapper.Map(unique, func(email *string) assignResult {
		_, err := s.assignOne(ctx, subject.SubjectID, *email)
		return classifyAssignment(err)
	})

	resp := &dto.ExamBatchAssignResponseDTO{
		SubjectID:     subject.SubjectID,
		Success:       []string{},
		AlreadyExists: []string{},
		NotFound:      []string{},
		Failed:        []dto.BatchFailureDTO{},
	}
	reported := make(map[string]bool, len(unique))
	for i, email := range emails {
		label := req.StudentEmails[i]
		if reported[email] {
			resp.AlreadyExists = append(resp.AlreadyExists, label)
			continue
		}
		reported[email] = true

		res := results[firstAt[email]]
		switch res.outcome {
		case outcomeSuccess:
			resp.Success = append(resp.Success, label)
		case outcomeAlreadyExists:
			resp.AlreadyExists = append(resp.AlreadyExists, label)
		case outcomeNotFound:
			resp.NotFound = append(resp.NotFound, label)
		default:
			resp.Failed = append(resp.Failed, dto.BatchFailureDTO{Email: label, Error: res.err.Error()})
		}
	}

	log.Info().
		Str("subjectID", subject.SubjectID).
		Int("success", len(resp.Success)).
		Int("alreadyExists", len(resp.AlreadyExists)).
		Int("notFound", len(resp.NotFound)).
		Int("failed", len(resp.Failed)).
		Msg("Batch exam assignment finished")
	return resp, nil
}

func classifyAssignment(err error) assignResult {
	switch {
	case err == nil:
		return assignResult{outcome: outcomeSuccess}
	case apperror.HasCode(err, apperror.CodeDuplicateAssignment):
		return assignResult{outcome: outcomeAlreadyExists, err: err}
	case apperror.KindOf(err) == apperror.KindNotFound:
		return assignResult{outcome: outcomeNotFound, err: err}
	default:
		return assignResult{outcome: outcomeFailed, err: err}
	}
}

// AssignSet records setName on each listed student's exam for the subject.
// Students without such an exam, or unknown emails, are skipped.
func (s *examAssignmentService) AssignSet(ctx context.Context, subjectID string, req dto.SetAssignDTO) (*dto.SetAssignResponseDTO, error) {
	subject, err := s.findSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	set, ok := subject.FindSet(req.SetName)
	if !ok {
		return nil, apperror.NotFound("set %q not found in subject %s", req.SetName, subjectID)
	}

	updated := []string{}
	for _, email := range req.StudentEmails {
		student, err := mutateStudentExams(ctx, s.studentRepo, email, func(st *model.Student) error {
			idx := st.ExamIndex(subject.SubjectID)
			if idx < 0 {
				return apperror.New(apperror.KindNotFound, apperror.CodeNoExamFound, "no exam for subject %s", subject.SubjectID)
			}
			name := set.Name
			st.Exams[idx].Set = &name
			return nil
		})
		if apperror.KindOf(err) == apperror.KindNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		updated = append(updated, student.Email)
	}

	if len(updated) == 0 {
		return nil, apperror.NotFound("no student with an exam for subject %s matched", subjectID)
	}
	log.Info().Str("subjectID", subjectID).Str("set", set.Name).Int("updated", len(updated)).Msg("Set assigned to students")
	return &dto.SetAssignResponseDTO{
		SubjectID:    subject.SubjectID,
		Set:          set.Name,
		UpdatedCount: len(updated),
		Updated:      updated,
	}, nil
}

// assignOne appends a fresh pending exam for subjectID to the student.
func (s *examAssignmentService) assignOne(ctx context.Context, subjectID, email string) (*model.Student, error) {
	return mutateStudentExams(ctx, s.studentRepo, email, func(st *model.Student) error {
		if st.ExamIndex(subjectID) >= 0 {
			return apperror.Conflict(apperror.CodeDuplicateAssignment,
				"student %s is already assigned to subject %s", st.Email, subjectID)
		}
		st.Exams = append(st.Exams, model.NewStudentExam(subjectID))
		return nil
	})
}

func (s *examAssignmentService) findSubject(ctx context.Context, subjectID string) (*model.Subject, error) {
	subject, err := s.subjectRepo.FindBySubjectID(ctx, subjectID)
	if err != nil {
		return nil, storeFailure(err, "find subject")
	}
	if subject == nil {
		return nil, apperror.NotFound("subject %s not found", subjectID)
	}
	return subject, nil
}

func (s *examAssignmentService) activeSubject(ctx context.Context, subjectID string) (*model.Subject, error) {
	subject, err := s.findSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if !subject.IsActive() {
		return nil, apperror.Precondition(apperror.CodeInactiveSubject,
			"subject %s is not active (status %q)", subjectID, subject.Status)
	}
	return subject, nil
}
