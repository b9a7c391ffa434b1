package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectFindSet(t *testing.T) {
	s := Subject{Sets: []Set{{Name: "Set 1", Students: 4}, {Name: "Morning", Students: 6}}}

	set, ok := s.FindSet("  morning ")
	assert.True(t, ok)
	assert.Equal(t, "Morning", set.Name)

	_, ok = s.FindSet("Evening")
	assert.False(t, ok)
}

func TestSubjectIsActive(t *testing.T) {
	assert.True(t, (&Subject{Status: "Active"}).IsActive())
	assert.False(t, (&Subject{Status: "active"}).IsActive())
	assert.False(t, (&Subject{}).IsActive())
}

func TestQuestionsInSetSortsBySetIndex(t *testing.T) {
	b := QuestionBank{Questions: []Question{
		{QuestionID: "q3", Set: "Set 1", SetIndex: 3},
		{QuestionID: "q1", Set: "Set 1", SetIndex: 1},
		{QuestionID: "x1", Set: "Set 2", SetIndex: 1},
		{QuestionID: "q2", Set: "Set 1", SetIndex: 2},
		{QuestionID: "lower", Set: "set 1", SetIndex: 1},
	}}

	got := b.QuestionsInSet("Set 1")
	ids := make([]string, 0, len(got))
	for _, q := range got {
		ids = append(ids, q.QuestionID)
	}
	assert.Equal(t, []string{"q1", "q2", "q3"}, ids)
	assert.Empty(t, b.QuestionsInSet("Set 9"))
}

func TestLastSetIndex(t *testing.T) {
	b := QuestionBank{Questions: []Question{
		{Set: "Set 1", SetIndex: 1},
		{Set: "Set 1", SetIndex: 4},
		{Set: "Set 2", SetIndex: 2},
	}}
	assert.Equal(t, 4, b.LastSetIndex("Set 1"))
	assert.Equal(t, 2, b.LastSetIndex("Set 2"))
	assert.Zero(t, b.LastSetIndex("Set 3"))
}

func TestQuestionBankBeforeSave(t *testing.T) {
	b := QuestionBank{Questions: []Question{{QuestionID: "a"}, {QuestionID: "b"}}, TotalQuestions: 7}
	assert.NoError(t, b.BeforeSave(nil))
	assert.Equal(t, 2, b.TotalQuestions)
}

func TestStudentExamIndex(t *testing.T) {
	s := Student{Exams: []StudentExam{NewStudentExam("SUB-1"), NewStudentExam("SUB-2")}}
	assert.Equal(t, 1, s.ExamIndex("SUB-2"))
	assert.Equal(t, -1, s.ExamIndex("SUB-3"))
}

func TestNewStudentExam(t *testing.T) {
	e := NewStudentExam("SUB-1")
	assert.Equal(t, ExamStatusPending, e.Status)
	assert.Nil(t, e.Set)
	assert.Nil(t, e.ExamStartTime)
	assert.Nil(t, e.ExamEndTime)
	assert.NotNil(t, e.SelectedAnswers)
	assert.Empty(t, e.SelectedAnswers)
	assert.Zero(t, e.Score)
	assert.Zero(t, e.TotalScore)
}

func TestExamStatusIsSubmitted(t *testing.T) {
	assert.True(t, ExamStatusSubmitted.IsSubmitted())
	assert.True(t, ExamStatusAutoSubmitted.IsSubmitted())
	assert.False(t, ExamStatusPending.IsSubmitted())
	assert.False(t, ExamStatusApproved.IsSubmitted())
}
