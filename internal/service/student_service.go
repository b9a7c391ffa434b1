package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/examdesk/internal/apperror"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/idgen"
	"github.com/lshigami/examdesk/internal/model"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

type StudentService interface {
	AddStudent(ctx context.Context, req dto.StudentCreateDTO) (*dto.StudentResponseDTO, error)
	// AddStudents registers every student or none of them.
	AddStudents(ctx context.Context, req dto.StudentBatchCreateDTO) ([]dto.StudentResponseDTO, error)
	GetStudent(ctx context.Context, studentID string) (*dto.StudentResponseDTO, error)
	GetStudentByEmail(ctx context.Context, email string) (*dto.StudentResponseDTO, error)
	GetStudents(ctx context.Context, departmentID string) ([]dto.StudentResponseDTO, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	ids         idgen.Generator
}

func NewStudentService(studentRepo repository.StudentRepository, ids idgen.Generator) StudentService {
	return &studentService{studentRepo: studentRepo, ids: ids}
}

// NormalizeEmail lowercases and trims an address after checking its format.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return "", apperror.Validation("invalid email format: %q", raw)
	}
	return email, nil
}

func (s *studentService) newStudent(req dto.StudentCreateDTO) (model.Student, error) {
	var student model.Student
	email, err := NormalizeEmail(req.Email)
	if err != nil {
		return student, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return student, apperror.Validation("student name is required")
	}
	if err := copier.Copy(&student, &req); err != nil {
		return student, fmt.Errorf("map student request: %w", err)
	}
	student.StudentID = s.ids.Generate(idgen.PrefixStudent)
	student.Name = strings.TrimSpace(req.Name)
	student.Email = email
	student.Exams = []model.StudentExam{}
	return student, nil
}

func (s *studentService) AddStudent(ctx context.Context, req dto.StudentCreateDTO) (*dto.StudentResponseDTO, error) {
	student, err := s.newStudent(req)
	if err != nil {
		return nil, err
	}
	emailTaken, err := insertWithFreshID("add student",
		func() error { return s.studentRepo.Create(ctx, &student) },
		func() (bool, error) {
			existing, err := s.studentRepo.FindByEmail(ctx, student.Email)
			return existing != nil, err
		},
		func() { student.StudentID = s.ids.Generate(idgen.PrefixStudent) },
	)
	if emailTaken {
		return nil, apperror.Conflict(apperror.CodeDuplicate, "student with email %s already exists", student.Email)
	}
	if err != nil {
		return nil, storeFailure(err, "add student")
	}

	log.Info().Str("studentID", student.StudentID).Str("email", student.Email).Msg("Student added")
	resp := toStudentDTO(&student)
	return &resp, nil
}

func (s *studentService) AddStudents(ctx context.Context, req dto.StudentBatchCreateDTO) ([]dto.StudentResponseDTO, error) {
	students := make([]model.Student, 0, len(req.Students))
	var invalid, repeated []string
	seen := make(map[string]struct{}, len(req.Students))
	usedIDs := make(map[string]struct{}, len(req.Students))
	emails := make([]string, 0, len(req.Students))

	for _, in := range req.Students {
		student, err := s.newStudent(in)
		if err != nil {
			invalid = append(invalid, err.Error())
			continue
		}
		if _, dup := seen[student.Email]; dup {
			repeated = append(repeated, student.Email)
			continue
		}
		seen[student.Email] = struct{}{}
		if _, clash := usedIDs[student.StudentID]; clash {
			student.StudentID = uniqueID(s.ids, idgen.PrefixStudent, usedIDs)
		} else {
			usedIDs[student.StudentID] = struct{}{}
		}
		emails = append(emails, student.Email)
		students = append(students, student)
	}
	if len(invalid) > 0 {
		return nil, apperror.Validation("%d student record(s) are invalid", len(invalid)).WithDetails(invalid...)
	}
	if len(repeated) > 0 {
		return nil, apperror.Validation("duplicate emails in request").WithDetails(repeated...)
	}

	var taken []string
	registered := func() (bool, error) {
		existing, err := s.studentRepo.FindByEmails(ctx, emails)
		if err != nil {
			return false, err
		}
		taken = taken[:0]
		for _, st := range existing {
			taken = append(taken, st.Email)
		}
		return len(taken) > 0, nil
	}
	if found, err := registered(); err != nil {
		return nil, storeFailure(err, "check existing students")
	} else if found {
		return nil, apperror.Conflict(apperror.CodeDuplicate, "%d email(s) already registered", len(taken)).WithDetails(taken...)
	}

	emailTaken, err := insertWithFreshID("add students",
		func() error { return s.studentRepo.CreateBatch(ctx, students) },
		registered,
		func() {
			redrawn := make(map[string]struct{}, len(students))
			for i := range students {
				students[i].ID = 0
				students[i].StudentID = uniqueID(s.ids, idgen.PrefixStudent, redrawn)
			}
		},
	)
	if emailTaken {
		return nil, apperror.Conflict(apperror.CodeDuplicate, "%d email(s) already registered", len(taken)).WithDetails(taken...)
	}
	if err != nil {
		return nil, storeFailure(err, "add students")
	}

	log.Info().Int("count", len(students)).Msg("Students added")
	out := make([]dto.StudentResponseDTO, len(students))
	for i := range students {
		out[i] = toStudentDTO(&students[i])
	}
	return out, nil
}

func (s *studentService) GetStudent(ctx context.Context, studentID string) (*dto.StudentResponseDTO, error) {
	student, err := s.studentRepo.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, storeFailure(err, "find student")
	}
	if student == nil {
		return nil, apperror.NotFound("student %s not found", studentID)
	}
	resp := toStudentDTO(student)
	return &resp, nil
}

func (s *studentService) GetStudentByEmail(ctx context.Context, email string) (*dto.StudentResponseDTO, error) {
	student, err := findStudentByEmail(ctx, s.studentRepo, email)
	if err != nil {
		return nil, err
	}
	resp := toStudentDTO(student)
	return &resp, nil
}

func (s *studentService) GetStudents(ctx context.Context, departmentID string) ([]dto.StudentResponseDTO, error) {
	students, err := s.studentRepo.FindAll(ctx, departmentID)
	if err != nil {
		return nil, storeFailure(err, "list students")
	}
	out := make([]dto.StudentResponseDTO, len(students))
	for i := range students {
		out[i] = toStudentDTO(&students[i])
	}
	return out, nil
}

// findStudentByEmail resolves a student, reporting NotFound when absent.
func findStudentByEmail(ctx context.Context, repo repository.StudentRepository, email string) (*model.Student, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	student, err := repo.FindByEmail(ctx, key)
	if err != nil {
		return nil, storeFailure(err, "find student")
	}
	if student == nil {
		return nil, apperror.NotFound("student with email %s not found", key)
	}
	return student, nil
}
