package repository

import (
	"context"

	"github.com/lshigami/examdesk/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	// CreateBatch inserts all students or none.
	CreateBatch(ctx context.Context, students []model.Student) error
	FindByStudentID(ctx context.Context, studentID string) (*model.Student, error)
	FindByEmail(ctx context.Context, email string) (*model.Student, error)
	FindByEmails(ctx context.Context, emails []string) ([]model.Student, error)
	FindAll(ctx context.Context, departmentID string) ([]model.Student, error)
	// UpdateExams persists student.Exams only if the row still carries
	// student.Version, then bumps the version. Returns ErrStaleWrite otherwise.
	UpdateExams(ctx context.Context, student *model.Student) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) CreateBatch(ctx context.Context, students []model.Student) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&students, 100).Error
	})
}

func (r *studentRepository) FindByStudentID(ctx context.Context, studentID string) (*model.Student, error) {
	return first[model.Student](r.db.WithContext(ctx).Where("student_id = ?", studentID))
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	return first[model.Student](r.db.WithContext(ctx).Where("email = ?", email))
}

func (r *studentRepository) FindByEmails(ctx context.Context, emails []string) ([]model.Student, error) {
	var students []model.Student
	if len(emails) == 0 {
		return students, nil
	}
	if err := r.db.WithContext(ctx).Where("email IN ?", emails).Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) FindAll(ctx context.Context, departmentID string) ([]model.Student, error) {
	var students []model.Student
	query := r.db.WithContext(ctx)
	if departmentID != "" {
		query = query.Where("department_id = ?", departmentID)
	}
	if err := query.Order("created_at ASC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) UpdateExams(ctx context.Context, student *model.Student) error {
	res := r.db.WithContext(ctx).Model(&model.Student{}).
		Where("id = ? AND version = ?", student.ID, student.Version).
		Updates(map[string]any{
			"exams":   student.Exams,
			"version": student.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleWrite
	}
	student.Version++
	return nil
}
