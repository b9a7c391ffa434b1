package service

import (
	"context"
	"sort"
	"strings"

	"github.com/lshigami/examdesk/internal/apperror"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/idgen"
	"github.com/lshigami/examdesk/internal/model"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionBankService interface {
	CreateQuestionBank(ctx context.Context, req dto.QuestionBankCreateDTO) (*dto.QuestionBankResponseDTO, error)
	AddQuestions(ctx context.Context, examID string, req dto.AddQuestionsDTO) (*dto.QuestionBankResponseDTO, error)
	UpdateQuestion(ctx context.Context, examID, questionID string, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error)
	GetQuestionBanks(ctx context.Context, subjectID string) ([]dto.QuestionBankResponseDTO, error)
	// GetQuestions returns the bank's questions; a non-empty set filters to
	// that set and orders by set index.
	GetQuestions(ctx context.Context, examID, set string) (*dto.SetQuestionsResponseDTO, error)
	GetSubjectQuestions(ctx context.Context, subjectID, set string) (*dto.SetQuestionsResponseDTO, error)
	GetSetSummary(ctx context.Context, examID string) ([]dto.SetQuestionCountDTO, error)
}

type questionBankService struct {
	bankRepo    repository.QuestionBankRepository
	subjectRepo repository.SubjectRepository
	ids         idgen.Generator
}

func NewQuestionBankService(bankRepo repository.QuestionBankRepository, subjectRepo repository.SubjectRepository, ids idgen.Generator) QuestionBankService {
	return &questionBankService{bankRepo: bankRepo, subjectRepo: subjectRepo, ids: ids}
}

func (s *questionBankService) CreateQuestionBank(ctx context.Context, req dto.QuestionBankCreateDTO) (*dto.QuestionBankResponseDTO, error) {
	subject, err := s.subjectRepo.FindBySubjectID(ctx, req.SubjectID)
	if err != nil {
		return nil, storeFailure(err, "find subject")
	}
	if subject == nil {
		return nil, apperror.NotFound("subject %s not found", req.SubjectID)
	}

	bank := model.QuestionBank{
		ExamID:    s.ids.Generate(idgen.PrefixExam),
		SubjectID: subject.SubjectID,
		Class:     strings.TrimSpace(req.Class),
		Questions: []model.Question{},
	}
	subjectTaken, err := insertWithFreshID("create question bank",
		func() error { return s.bankRepo.Create(ctx, &bank) },
		func() (bool, error) {
			existing, err := s.bankRepo.FindBySubjectID(ctx, bank.SubjectID)
			return existing != nil, err
		},
		func() { bank.ExamID = s.ids.Generate(idgen.PrefixExam) },
	)
	if subjectTaken {
		return nil, apperror.Conflict(apperror.CodeDuplicate, "subject %s already has a question bank", req.SubjectID)
	}
	if err != nil {
		return nil, storeFailure(err, "create question bank")
	}

	log.Info().Str("examID", bank.ExamID).Str("subjectID", bank.SubjectID).Msg("Question bank created")
	resp := toQuestionBankDTO(&bank, true)
	return &resp, nil
}

func (s *questionBankService) AddQuestions(ctx context.Context, examID string, req dto.AddQuestionsDTO) (*dto.QuestionBankResponseDTO, error) {
	bank, err := s.findBank(ctx, examID)
	if err != nil {
		return nil, err
	}

	canonical, err := s.setSpellings(ctx, bank.SubjectID)
	if err != nil {
		return nil, err
	}

	added, err := PrepareQuestions(bank.Questions, req.Questions, canonical, s.ids)
	if err != nil {
		return nil, err
	}
	bank.Questions = append(bank.Questions, added...)

	if err := s.bankRepo.Update(ctx, bank); err != nil {
		return nil, storeFailure(err, "add questions")
	}

	log.Info().Str("examID", examID).Int("added", len(added)).Int("totalQuestions", bank.TotalQuestions).Msg("Questions added")
	resp := toQuestionBankDTO(bank, true)
	return &resp, nil
}

// UpdateQuestion edits one question in place. New options are re-lettered by
// position and the correct answer must still name one of them. A question
// moved to another set goes to the end of that set.
func (s *questionBankService) UpdateQuestion(ctx context.Context, examID, questionID string, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error) {
	bank, err := s.findBank(ctx, examID)
	if err != nil {
		return nil, err
	}
	idx, ok := bank.FindQuestion(questionID)
	if !ok {
		return nil, apperror.NotFound("question %s not found in exam %s", questionID, examID)
	}

	q := bank.Questions[idx]
	if req.QuestionText != nil && strings.TrimSpace(*req.QuestionText) != "" {
		q.QuestionText = strings.TrimSpace(*req.QuestionText)
	}
	if req.AnswerOptions != nil {
		q.AnswerOptions = buildOptions(req.AnswerOptions)
	}
	if req.CorrectAnswerID != nil {
		q.CorrectAnswerID = strings.ToUpper(strings.TrimSpace(*req.CorrectAnswerID))
	}
	if req.Score != nil {
		if *req.Score < 1 {
			return nil, apperror.Validation("score must be at least 1")
		}
		q.Score = *req.Score
	}
	if !q.HasOption(q.CorrectAnswerID) {
		return nil, apperror.Validation("correct answer %q does not match any option", q.CorrectAnswerID)
	}
	if req.Set != nil {
		set := strings.TrimSpace(*req.Set)
		if set == "" {
			return nil, apperror.Validation("set must not be blank")
		}
		canonical, err := s.setSpellings(ctx, bank.SubjectID)
		if err != nil {
			return nil, err
		}
		if name, ok := canonical[model.SetKey(set)]; ok {
			set = name
		}
		if set != q.Set {
			q.Set = set
			q.SetIndex = bank.LastSetIndex(set) + 1
		}
	}

	bank.Questions[idx] = q
	if err := s.bankRepo.Update(ctx, bank); err != nil {
		return nil, storeFailure(err, "update question")
	}
	resp := toQuestionDTO(&q)
	return &resp, nil
}

func (s *questionBankService) GetQuestionBanks(ctx context.Context, subjectID string) ([]dto.QuestionBankResponseDTO, error) {
	banks, err := s.bankRepo.FindAll(ctx, subjectID)
	if err != nil {
		return nil, storeFailure(err, "list question banks")
	}
	out := make([]dto.QuestionBankResponseDTO, len(banks))
	for i := range banks {
		out[i] = toQuestionBankDTO(&banks[i], false)
	}
	return out, nil
}

func (s *questionBankService) GetQuestions(ctx context.Context, examID, set string) (*dto.SetQuestionsResponseDTO, error) {
	bank, err := s.findBank(ctx, examID)
	if err != nil {
		return nil, err
	}
	return setQuestions(bank, set), nil
}

func (s *questionBankService) GetSubjectQuestions(ctx context.Context, subjectID, set string) (*dto.SetQuestionsResponseDTO, error) {
	bank, err := s.bankRepo.FindBySubjectID(ctx, subjectID)
	if err != nil {
		return nil, storeFailure(err, "find question bank")
	}
	if bank == nil {
		return nil, apperror.NotFound("no question bank found for subject %s", subjectID)
	}
	return setQuestions(bank, set), nil
}

func (s *questionBankService) GetSetSummary(ctx context.Context, examID string) ([]dto.SetQuestionCountDTO, error) {
	bank, err := s.findBank(ctx, examID)
	if err != nil {
		return nil, err
	}
	bySet := map[string]*dto.SetQuestionCountDTO{}
	for _, q := range bank.Questions {
		c, ok := bySet[q.Set]
		if !ok {
			c = &dto.SetQuestionCountDTO{Set: q.Set}
			bySet[q.Set] = c
		}
		c.TotalQuestions++
		c.TotalScore += q.Score
	}
	out := make([]dto.SetQuestionCountDTO, 0, len(bySet))
	for _, c := range bySet {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Set < out[j].Set })
	return out, nil
}

func (s *questionBankService) findBank(ctx context.Context, examID string) (*model.QuestionBank, error) {
	bank, err := s.bankRepo.FindByExamID(ctx, examID)
	if err != nil {
		return nil, storeFailure(err, "find question bank")
	}
	if bank == nil {
		return nil, apperror.NotFound("exam %s not found", examID)
	}
	return bank, nil
}

// setSpellings maps each set key of the subject to the subject's spelling.
func (s *questionBankService) setSpellings(ctx context.Context, subjectID string) (map[string]string, error) {
	canonical := map[string]string{}
	subject, err := s.subjectRepo.FindBySubjectID(ctx, subjectID)
	if err != nil {
		return nil, storeFailure(err, "find subject")
	}
	if subject != nil {
		for _, set := range subject.Sets {
			canonical[model.SetKey(set.Name)] = set.Name
		}
	}
	return canonical, nil
}

func setQuestions(bank *model.QuestionBank, set string) *dto.SetQuestionsResponseDTO {
	questions := bank.Questions
	if set != "" {
		questions = bank.QuestionsInSet(set)
	}
	return &dto.SetQuestionsResponseDTO{
		ExamID:         bank.ExamID,
		SubjectID:      bank.SubjectID,
		Set:            set,
		TotalQuestions: len(questions),
		Questions:      toQuestionDTOs(questions),
	}
}
