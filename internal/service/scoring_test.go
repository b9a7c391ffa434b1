package service

import (
	"testing"

	"github.com/lshigami/examdesk/internal/apperror"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoringPool() []model.Question {
	return []model.Question{
		{QuestionID: "QST-1", CorrectAnswerID: "A", Score: 2},
		{QuestionID: "QST-2", CorrectAnswerID: "C", Score: 3},
		{QuestionID: "QST-3", CorrectAnswerID: "B", Score: 5},
	}
}

func TestScoreAnswers(t *testing.T) {
	res, err := ScoreAnswers(scoringPool(), []dto.AnswerSubmitDTO{
		{QuestionID: "QST-1", SelectedAnswerID: "A"},
		{QuestionID: "QST-2", SelectedAnswerID: "B"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 10, res.TotalScore, "unanswered questions still count toward the total")
	assert.Equal(t, []model.SelectedAnswer{
		{QuestionID: "QST-1", SelectedAnswerID: "A", IsCorrect: true, Score: 2},
		{QuestionID: "QST-2", SelectedAnswerID: "B", IsCorrect: false, Score: 0},
	}, res.Answers)
}

func TestScoreAnswersExactMatch(t *testing.T) {
	res, err := ScoreAnswers(scoringPool(), []dto.AnswerSubmitDTO{{QuestionID: "QST-1", SelectedAnswerID: "a"}})
	require.NoError(t, err)
	assert.False(t, res.Answers[0].IsCorrect)
	assert.Zero(t, res.Score)
}

func TestScoreAnswersEmpty(t *testing.T) {
	res, err := ScoreAnswers(scoringPool(), nil)
	require.NoError(t, err)
	assert.Zero(t, res.Score)
	assert.Equal(t, 10, res.TotalScore)
	assert.Empty(t, res.Answers)
}

func TestScoreAnswersRejectsUnknownQuestion(t *testing.T) {
	_, err := ScoreAnswers(scoringPool(), []dto.AnswerSubmitDTO{
		{QuestionID: "QST-1", SelectedAnswerID: "A"},
		{QuestionID: "QST-9", SelectedAnswerID: "A"},
	})
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidQuestionID))
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestScoreAnswersGradesRepeatedQuestions(t *testing.T) {
	res, err := ScoreAnswers(scoringPool(), []dto.AnswerSubmitDTO{
		{QuestionID: "QST-1", SelectedAnswerID: "B"},
		{QuestionID: "QST-1", SelectedAnswerID: "A"},
	})
	require.NoError(t, err)

	assert.Equal(t, []model.SelectedAnswer{
		{QuestionID: "QST-1", SelectedAnswerID: "B", IsCorrect: false, Score: 0},
		{QuestionID: "QST-1", SelectedAnswerID: "A", IsCorrect: true, Score: 2},
	}, res.Answers)
	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 10, res.TotalScore)
}

func TestScoreAnswersBounds(t *testing.T) {
	pool := scoringPool()
	all := []dto.AnswerSubmitDTO{
		{QuestionID: "QST-1", SelectedAnswerID: "A"},
		{QuestionID: "QST-2", SelectedAnswerID: "C"},
		{QuestionID: "QST-3", SelectedAnswerID: "B"},
	}
	res, err := ScoreAnswers(pool, all)
	require.NoError(t, err)
	assert.Equal(t, res.TotalScore, res.Score)

	earned := 0
	for _, a := range res.Answers {
		earned += a.Score
	}
	assert.Equal(t, res.Score, earned)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total int
		want         float64
	}{
		{2, 5, 40},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{5, 5, 100},
		{0, 0, 0},
		{0, 10, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percentage(tt.score, tt.total), "%d/%d", tt.score, tt.total)
	}
}
