package repository

import (
	"context"

	"github.com/lshigami/examdesk/internal/model"
	"gorm.io/gorm"
)

type QuestionBankRepository interface {
	Create(ctx context.Context, bank *model.QuestionBank) error
	Update(ctx context.Context, bank *model.QuestionBank) error
	FindByExamID(ctx context.Context, examID string) (*model.QuestionBank, error)
	FindBySubjectID(ctx context.Context, subjectID string) (*model.QuestionBank, error)
	FindAll(ctx context.Context, subjectID string) ([]model.QuestionBank, error)
}

type questionBankRepository struct {
	db *gorm.DB
}

func NewQuestionBankRepository(db *gorm.DB) QuestionBankRepository {
	return &questionBankRepository{db: db}
}

func (r *questionBankRepository) Create(ctx context.Context, bank *model.QuestionBank) error {
	return r.db.WithContext(ctx).Create(bank).Error
}

// Update writes the whole bank; the BeforeSave hook refreshes TotalQuestions.
func (r *questionBankRepository) Update(ctx context.Context, bank *model.QuestionBank) error {
	return r.db.WithContext(ctx).Save(bank).Error
}

func (r *questionBankRepository) FindByExamID(ctx context.Context, examID string) (*model.QuestionBank, error) {
	return first[model.QuestionBank](r.db.WithContext(ctx).Where("exam_id = ?", examID))
}

func (r *questionBankRepository) FindBySubjectID(ctx context.Context, subjectID string) (*model.QuestionBank, error) {
	return first[model.QuestionBank](r.db.WithContext(ctx).Where("subject_id = ?", subjectID))
}

func (r *questionBankRepository) FindAll(ctx context.Context, subjectID string) ([]model.QuestionBank, error) {
	var banks []model.QuestionBank
	query := r.db.WithContext(ctx)
	if subjectID != "" {
		query = query.Where("subject_id = ?", subjectID)
	}
	if err := query.Order("created_at ASC").Find(&banks).Error; err != nil {
		return nil, err
	}
	return banks, nil
}
