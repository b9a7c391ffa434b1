package service

import (
	"github.com/lshigami/examdesk/internal/apperror"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/model"
)

// ScoreResult is the outcome of grading one submission against a question pool.
type ScoreResult struct {
	Answers    []model.SelectedAnswer
	Score      int
	TotalScore int
}

// ScoreAnswers grades answers against pool in submission order, repeats
// included. Every answered question must be in the pool; otherwise nothing is
// graded. TotalScore covers the whole pool, answered or not.
func ScoreAnswers(pool []model.Question, answers []dto.AnswerSubmitDTO) (*ScoreResult, error) {
	byID := make(map[string]model.Question, len(pool))
	total := 0
	for _, q := range pool {
		byID[q.QuestionID] = q
		total += q.Score
	}

	res := &ScoreResult{Answers: make([]model.SelectedAnswer, 0, len(answers)), TotalScore: total}
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			return nil, apperror.New(apperror.KindValidation, apperror.CodeInvalidQuestionID,
				"invalid question id %q", a.QuestionID)
		}

		correct := a.SelectedAnswerID == q.CorrectAnswerID
		earned := 0
		if correct {
			earned = q.Score
		}
		res.Score += earned
		res.Answers = append(res.Answers, model.SelectedAnswer{
			QuestionID:       a.QuestionID,
			SelectedAnswerID: a.SelectedAnswerID,
			IsCorrect:        correct,
			Score:            earned,
		})
	}
	return res, nil
}
