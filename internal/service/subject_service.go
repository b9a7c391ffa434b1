package service

import (
	"context"
	"strings"

	"github.com/lshigami/examdesk/internal/apperror"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/idgen"
	"github.com/lshigami/examdesk/internal/model"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

// SubjectService owns subjects and their set partitioning.
type SubjectService interface {
	CreateSubject(ctx context.Context, req dto.SubjectCreateDTO) (*dto.SubjectResponseDTO, error)
	UpdateSubject(ctx context.Context, subjectID string, req dto.SubjectUpdateDTO) (*dto.SubjectResponseDTO, error)
	GetSubject(ctx context.Context, subjectID string) (*dto.SubjectResponseDTO, error)
	GetSubjects(ctx context.Context, departmentID string) ([]dto.SubjectResponseDTO, error)
	DeleteSubject(ctx context.Context, subjectID string) error

	GetSets(ctx context.Context, subjectID string) (*dto.SetsResponseDTO, error)
	GetTotalStudents(ctx context.Context, subjectID string) (*dto.TotalStudentsResponseDTO, error)
	ReplaceSets(ctx context.Context, subjectID string, req dto.SetsReplaceDTO) (*dto.SetsResponseDTO, error)
	AddSet(ctx context.Context, subjectID string, req dto.SetDTO) (*dto.SetsResponseDTO, error)
	RemoveSet(ctx context.Context, subjectID, setName string) (*dto.SetsResponseDTO, error)
}

type subjectService struct {
	subjectRepo    repository.SubjectRepository
	departmentRepo repository.DepartmentRepository
	ids            idgen.Generator
}

func NewSubjectService(subjectRepo repository.SubjectRepository, departmentRepo repository.DepartmentRepository, ids idgen.Generator) SubjectService {
	return &subjectService{subjectRepo: subjectRepo, departmentRepo: departmentRepo, ids: ids}
}

func (s *subjectService) CreateSubject(ctx context.Context, req dto.SubjectCreateDTO) (*dto.SubjectResponseDTO, error) {
	sets, total, err := ReconcileSets(fromSetDTOs(req.Sets), req.TotalStudents, req.AutoCalculate)
	if err != nil {
		return nil, err
	}
	if err := s.requireDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	subject := model.Subject{
		SubjectID:     s.ids.Generate(idgen.PrefixSubject),
		Name:          strings.TrimSpace(req.Name),
		Class:         strings.TrimSpace(req.Class),
		TeacherName:   strings.TrimSpace(req.TeacherName),
		DepartmentID:  req.DepartmentID,
		Status:        strings.TrimSpace(req.Status),
		TotalStudents: total,
		Sets:          sets,
	}
	if _, err := insertWithFreshID("create subject",
		func() error { return s.subjectRepo.Create(ctx, &subject) },
		nil,
		func() { subject.SubjectID = s.ids.Generate(idgen.PrefixSubject) },
	); err != nil {
		return nil, storeFailure(err, "create subject")
	}

	log.Info().Str("subjectID", subject.SubjectID).Int("sets", len(sets)).Int("totalStudents", total).Msg("Subject created")
	resp := toSubjectDTO(&subject)
	return &resp, nil
}

func (s *subjectService) UpdateSubject(ctx context.Context, subjectID string, req dto.SubjectUpdateDTO) (*dto.SubjectResponseDTO, error) {
	subject, err := s.findSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	switch {
	case req.Sets != nil:
		declared := subject.TotalStudents
		if req.TotalStudents != nil {
			declared = *req.TotalStudents
		}
		sets, total, err := ReconcileSets(fromSetDTOs(req.Sets), declared, req.AutoCalculate)
		if err != nil {
			return nil, err
		}
		subject.Sets, subject.TotalStudents = sets, total
	case req.TotalStudents != nil:
		sum := SumStudents(subject.Sets)
		if req.AutoCalculate {
			subject.TotalStudents = sum
		} else if *req.TotalStudents != sum {
			return nil, apperror.CountMismatch(*req.TotalStudents, sum)
		}
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		subject.Name = strings.TrimSpace(*req.Name)
	}
	if req.Class != nil && strings.TrimSpace(*req.Class) != "" {
		subject.Class = strings.TrimSpace(*req.Class)
	}
	if req.TeacherName != nil {
		subject.TeacherName = strings.TrimSpace(*req.TeacherName)
	}
	if req.Status != nil {
		subject.Status = strings.TrimSpace(*req.Status)
	}
	if req.DepartmentID != nil && *req.DepartmentID != subject.DepartmentID {
		if err := s.requireDepartment(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		subject.DepartmentID = *req.DepartmentID
	}

	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, storeFailure(err, "update subject")
	}
	resp := toSubjectDTO(subject)
	return &resp, nil
}

func (s *subjectService) GetSubject(ctx context.Context, subjectID string) (*dto.SubjectResponseDTO, error) {
	subject, err := s.findSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	resp := toSubjectDTO(subject)
	return &resp, nil
}

func (s *subjectService) GetSubjects(ctx context.Context, departmentID string) ([]dto.SubjectResponseDTO, error) {
	subjects, err := s.subjectRepo.FindAll(ctx, departmentID)
	if err != nil {
		return nil, storeFailure(err, "list subjects")
	}
	out := make([]dto.SubjectResponseDTO, len(subjects))
	for i := range subjects {
		out[i] = toSubjectDTO(&subjects[i])
	}
	return out, nil
}

func (s *subjectService) DeleteSubject(ctx context.Context, subjectID string) error {
	deleted, err := s.subjectRepo.Delete(ctx, subjectID)
	if err != nil {
		return storeFailure(err, "delete subject")
	}
	if !deleted {
		return apperror.NotFound("subject %s not found", subjectID)
	}
	log.Info().Str("subjectID", subjectID).Msg("Subject deleted")
	return nil
}

func (s *subjectService) GetSets(ctx context.Context, subjectID string) (*dto.SetsResponseDTO, error) {
	subject, err := s.findSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	resp := toSetsDTO(subject)
	return &resp, nil
}

func (s *subjectService) GetTotalStudents(ctx context.Context, subjectID string) (*dto.TotalStudentsResponseDTO, error) {
	subject, err := s.findSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	return &dto.TotalStudentsResponseDTO{SubjectID: subject.SubjectID, TotalStudents: subject.TotalStudents}, nil
}

// ReplaceSets swaps the whole set list. The new sets must add up to the
// subject's current total unless AutoCalculate is set.
func (s *subjectService) ReplaceSets(ctx context.Context, subjectID string, req dto.SetsReplaceDTO) (*dto.SetsResponseDTO, error) {
	subject, err := s.findSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	sets, total, err := ReconcileSets(fromSetDTOs(req.Sets), subject.TotalStudents, req.AutoCalculate)
	if err != nil {
		return nil, err
	}
	subject.Sets, subject.TotalStudents = sets, total
	return s.saveSets(ctx, subject, "replace sets")
}

func (s *subjectService) AddSet(ctx context.Context, subjectID string, req dto.SetDTO) (*dto.SetsResponseDTO, error) {
	subject, err := s.findSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	sets, total, err := AppendSet(subject.Sets, model.Set{Name: req.Name, Students: req.Students})
	if err != nil {
		return nil, err
	}
	subject.Sets, subject.TotalStudents = sets, total
	return s.saveSets(ctx, subject, "add set")
}

func (s *subjectService) RemoveSet(ctx context.Context, subjectID, setName string) (*dto.SetsResponseDTO, error) {
	subject, err := s.findSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	sets, total, err := RemoveSet(subject.Sets, setName)
	if err != nil {
		return nil, err
	}
	subject.Sets, subject.TotalStudents = sets, total

	resp, err := s.saveSets(ctx, subject, "remove set")
	if err != nil {
		return nil, err
	}
	log.Info().Str("subjectID", subjectID).Str("set", setName).Int("remainingSets", len(sets)).Msg("Set removed and students redistributed")
	return resp, nil
}

func (s *subjectService) saveSets(ctx context.Context, subject *model.Subject, op string) (*dto.SetsResponseDTO, error) {
	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, storeFailure(err, op)
	}
	resp := toSetsDTO(subject)
	return &resp, nil
}

func (s *subjectService) findSubject(ctx context.Context, subjectID string) (*model.Subject, error) {
	subject, err := s.subjectRepo.FindBySubjectID(ctx, subjectID)
	if err != nil {
		return nil, storeFailure(err, "find subject")
	}
	if subject == nil {
		return nil, apperror.NotFound("subject %s not found", subjectID)
	}
	return subject, nil
}

func (s *subjectService) requireDepartment(ctx context.Context, departmentID string) error {
	department, err := s.departmentRepo.FindByDepartmentID(ctx, departmentID)
	if err != nil {
		return storeFailure(err, "find department")
	}
	if department == nil {
		return apperror.NotFound("department %s not found", departmentID)
	}
	return nil
}
