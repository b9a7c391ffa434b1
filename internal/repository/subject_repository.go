package repository

import (
	"context"

	"github.com/lshigami/examdesk/internal/model"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	Update(ctx context.Context, subject *model.Subject) error
	// FindBySubjectID returns nil, nil when the subject does not exist.
	FindBySubjectID(ctx context.Context, subjectID string) (*model.Subject, error)
	// FindAll lists subjects, restricted to one department when departmentID is not empty.
	FindAll(ctx context.Context, departmentID string) ([]model.Subject, error)
	Delete(ctx context.Context, subjectID string) (bool, error)
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepository) Update(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Save(subject).Error
}

func (r *subjectRepository) FindBySubjectID(ctx context.Context, subjectID string) (*model.Subject, error) {
	return first[model.Subject](r.db.WithContext(ctx).Where("subject_id = ?", subjectID))
}

func (r *subjectRepository) FindAll(ctx context.Context, departmentID string) ([]model.Subject, error) {
	var subjects []model.Subject
	query := r.db.WithContext(ctx)
	if departmentID != "" {
		query = query.Where("department_id = ?", departmentID)
	}
	if err := query.Order("created_at ASC").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *subjectRepository) Delete(ctx context.Context, subjectID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("subject_id = ?", subjectID).Delete(&model.Subject{})
	return res.RowsAffected > 0, res.Error
}
