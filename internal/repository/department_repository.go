package repository

import (
	"context"

	"github.com/lshigami/examdesk/internal/model"
	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(ctx context.Context, department *model.Department) error
	Update(ctx context.Context, department *model.Department) error
	// FindByDepartmentID returns nil, nil when the department does not exist.
	FindByDepartmentID(ctx context.Context, departmentID string) (*model.Department, error)
	FindByName(ctx context.Context, name string) (*model.Department, error)
	FindAll(ctx context.Context) ([]model.Department, error)
	FindNames(ctx context.Context) ([]string, error)
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *model.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

func (r *departmentRepository) Update(ctx context.Context, department *model.Department) error {
	return r.db.WithContext(ctx).Save(department).Error
}

func (r *departmentRepository) FindByDepartmentID(ctx context.Context, departmentID string) (*model.Department, error) {
	return first[model.Department](r.db.WithContext(ctx).Where("department_id = ?", departmentID))
}

func (r *departmentRepository) FindByName(ctx context.Context, name string) (*model.Department, error) {
	return first[model.Department](r.db.WithContext(ctx).Where("name = ?", name))
}

func (r *departmentRepository) FindAll(ctx context.Context) ([]model.Department, error) {
	var departments []model.Department
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) FindNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&model.Department{}).Order("name ASC").Pluck("name", &names).Error
	return names, err
}
