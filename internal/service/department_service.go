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

type DepartmentService interface {
	CreateDepartment(ctx context.Context, req dto.DepartmentCreateDTO) (*dto.DepartmentResponseDTO, error)
	UpdateDepartment(ctx context.Context, departmentID string, req dto.DepartmentUpdateDTO) (*dto.DepartmentResponseDTO, error)
	AddClasses(ctx context.Context, departmentID string, req dto.AddClassesDTO) (*dto.AddClassesResponseDTO, error)
	GetAllDepartments(ctx context.Context) ([]dto.DepartmentResponseDTO, error)
	GetDepartmentNames(ctx context.Context) ([]string, error)
	GetClasses(ctx context.Context, departmentID string) ([]dto.ClassDTO, error)
}

type departmentService struct {
	departmentRepo repository.DepartmentRepository
	ids            idgen.Generator
}

func NewDepartmentService(departmentRepo repository.DepartmentRepository, ids idgen.Generator) DepartmentService {
	return &departmentService{departmentRepo: departmentRepo, ids: ids}
}

func (s *departmentService) CreateDepartment(ctx context.Context, req dto.DepartmentCreateDTO) (*dto.DepartmentResponseDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("department name is required")
	}
	classes, err := buildClasses(req.Classes)
	if err != nil {
		return nil, err
	}

	department := model.Department{
		DepartmentID: s.ids.Generate(idgen.PrefixDepartment),
		Name:         name,
		Classes:      classes,
	}
	nameTaken, err := insertWithFreshID("create department",
		func() error { return s.departmentRepo.Create(ctx, &department) },
		func() (bool, error) {
			existing, err := s.departmentRepo.FindByName(ctx, name)
			return existing != nil, err
		},
		func() { department.DepartmentID = s.ids.Generate(idgen.PrefixDepartment) },
	)
	if nameTaken {
		return nil, apperror.Conflict(apperror.CodeDuplicate, "department %q already exists", name)
	}
	if err != nil {
		return nil, storeFailure(err, "create department")
	}

	log.Info().Str("departmentID", department.DepartmentID).Str("name", name).Msg("Department created")
	resp := toDepartmentDTO(&department)
	return &resp, nil
}

func (s *departmentService) UpdateDepartment(ctx context.Context, departmentID string, req dto.DepartmentUpdateDTO) (*dto.DepartmentResponseDTO, error) {
	department, err := s.findDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperror.Validation("department name cannot be empty")
		}
		department.Name = name
	}
	if req.Classes != nil {
		classes, err := buildClasses(req.Classes)
		if err != nil {
			return nil, err
		}
		department.Classes = classes
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperror.Conflict(apperror.CodeDuplicate, "department %q already exists", department.Name)
		}
		return nil, storeFailure(err, "update department")
	}
	resp := toDepartmentDTO(department)
	return &resp, nil
}

// AddClasses appends classes whose names the department does not have yet.
func (s *departmentService) AddClasses(ctx context.Context, departmentID string, req dto.AddClassesDTO) (*dto.AddClassesResponseDTO, error) {
	department, err := s.findDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.AddClassesResponseDTO{Added: []string{}, Skipped: []string{}}
	for _, c := range req.Classes {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, apperror.Validation("class name is required")
		}
		if department.HasClass(name) {
			resp.Skipped = append(resp.Skipped, name)
			continue
		}
		department.Classes = append(department.Classes, model.Class{Name: name, StudentCount: c.StudentCount})
		resp.Added = append(resp.Added, name)
	}

	if len(resp.Added) > 0 {
		if err := s.departmentRepo.Update(ctx, department); err != nil {
			return nil, storeFailure(err, "add classes")
		}
	}
	resp.Department = toDepartmentDTO(department)
	return resp, nil
}

func (s *departmentService) GetAllDepartments(ctx context.Context) ([]dto.DepartmentResponseDTO, error) {
	departments, err := s.departmentRepo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(err, "list departments")
	}
	out := make([]dto.DepartmentResponseDTO, len(departments))
	for i := range departments {
		out[i] = toDepartmentDTO(&departments[i])
	}
	return out, nil
}

func (s *departmentService) GetDepartmentNames(ctx context.Context) ([]string, error) {
	names, err := s.departmentRepo.FindNames(ctx)
	if err != nil {
		return nil, storeFailure(err, "list department names")
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *departmentService) GetClasses(ctx context.Context, departmentID string) ([]dto.ClassDTO, error) {
	department, err := s.findDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	return toDepartmentDTO(department).Classes, nil
}

func (s *departmentService) findDepartment(ctx context.Context, departmentID string) (*model.Department, error) {
	department, err := s.departmentRepo.FindByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, storeFailure(err, "find department")
	}
	if department == nil {
		return nil, apperror.NotFound("department %s not found", departmentID)
	}
	return department, nil
}

// buildClasses trims names and rejects repeats within one request.
func buildClasses(in []dto.ClassDTO) ([]model.Class, error) {
	out := make([]model.Class, 0, len(in))
	listed := model.Department{}
	for _, c := range in {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, apperror.Validation("class name is required")
		}
		if listed.HasClass(name) {
			return nil, apperror.Validation("class %q listed more than once", name)
		}
		cls := model.Class{Name: name, StudentCount: c.StudentCount}
		listed.Classes = append(listed.Classes, cls)
		out = append(out, cls)
	}
	return out, nil
}
