package service

import (
	"context"
	"sync"
	"testing"

	"github.com/lshigami/examdesk/internal/apperror"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignExam(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	depID := env.department(t, "Science")
	active := env.subject(t, depID, "Active", dto.SetDTO{Name: "Set A", Students: 1})
	inactive := env.subject(t, depID, "Inactive", dto.SetDTO{Name: "Set A", Students: 1})
	env.student(t, "Ann", "ann@example.com")

	resp, err := env.assignments.AssignExam(ctx, dto.ExamAssignDTO{StudentEmail: "ANN@example.com", SubjectID: active})
	require.NoError(t, err)
	require.Len(t, resp.Exams, 1)
	exam := resp.Exams[0]
	assert.Equal(t, active, exam.SubjectID)
	assert.Equal(t, string(model.ExamStatusPending), exam.Status)
	assert.Nil(t, exam.Set)
	assert.Nil(t, exam.ExamStartTime)
	assert.Empty(t, exam.SelectedAnswers)
	assert.Zero(t, exam.TotalScore)

	_, err = env.assignments.AssignExam(ctx, dto.ExamAssignDTO{StudentEmail: "ann@example.com", SubjectID: active})
	assert.True(t, apperror.HasCode(err, apperror.CodeDuplicateAssignment))
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	_, err = env.assignments.AssignExam(ctx, dto.ExamAssignDTO{StudentEmail: "ann@example.com", SubjectID: inactive})
	assert.True(t, apperror.HasCode(err, apperror.CodeInactiveSubject))

	_, err = env.assignments.AssignExam(ctx, dto.ExamAssignDTO{StudentEmail: "ann@example.com", SubjectID: "SUB-999999"})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = env.assignments.AssignExam(ctx, dto.ExamAssignDTO{StudentEmail: "nobody@example.com", SubjectID: active})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestAssignExamBatch(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	subID := env.subject(t, env.department(t, "Science"), "Active", dto.SetDTO{Name: "Set A", Students: 3})
	env.student(t, "Ann", "ann@example.com")
	env.student(t, "Bob", "bob@example.com")

	_, err := env.assignments.AssignExam(ctx, dto.ExamAssignDTO{StudentEmail: "ann@example.com", SubjectID: subID})
	require.NoError(t, err)

	resp, err := env.assignments.AssignExamBatch(ctx, dto.ExamBatchAssignDTO{
		SubjectID:     subID,
		StudentEmails: []string{"ann@example.com", "bob@example.com", "ghost@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"bob@example.com"}, resp.Success)
	assert.Equal(t, []string{"ann@example.com"}, resp.AlreadyExists)
	assert.Equal(t, []string{"ghost@example.com"}, resp.NotFound)
	assert.Empty(t, resp.Failed)

	bob, err := env.students.GetStudentByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.Len(t, bob.Exams, 1)
	assert.Equal(t, subID, bob.Exams[0].SubjectID)
}

func TestAssignExamBatchKeepsOrderUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	subID := env.subject(t, env.department(t, "Science"), "Active", dto.SetDTO{Name: "Set A", Students: 10})

	var emails []string
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		email := name + "@example.com"
		env.student(t, name, email)
		emails = append(emails, email)
	}
	emails = append(emails, "c@example.com")

	resp, err := env.assignments.AssignExamBatch(ctx, dto.ExamBatchAssignDTO{SubjectID: subID, StudentEmails: emails})
	require.NoError(t, err)
	assert.Equal(t, emails[:8], resp.Success)
	assert.Equal(t, []string{"c@example.com"}, resp.AlreadyExists, "a repeated email is reported once as already assigned")
}

func TestAssignExamBatchInactiveSubject(t *testing.T) {
	env := newTestEnv(t, false)
	subID := env.subject(t, env.department(t, "Science"), "Closed", dto.SetDTO{Name: "Set A", Students: 1})

	_, err := env.assignments.AssignExamBatch(context.Background(), dto.ExamBatchAssignDTO{
		SubjectID:     subID,
		StudentEmails: []string{"ann@example.com"},
	})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.True(t, apperror.HasCode(err, apperror.CodeInactiveSubject))
}

func TestAssignSet(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	subID := env.subject(t, env.department(t, "Science"), "Active",
		dto.SetDTO{Name: "Set A", Students: 1}, dto.SetDTO{Name: "Set B", Students: 1})
	env.student(t, "Ann", "ann@example.com")
	env.student(t, "Bob", "bob@example.com")
	_, err := env.assignments.AssignExam(ctx, dto.ExamAssignDTO{StudentEmail: "ann@example.com", SubjectID: subID})
	require.NoError(t, err)

	resp, err := env.assignments.AssignSet(ctx, subID, dto.SetAssignDTO{
		SetName:       "set b",
		StudentEmails: []string{"ann@example.com", "bob@example.com", "ghost@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Set B", resp.Set)
	assert.Equal(t, 1, resp.UpdatedCount)
	assert.Equal(t, []string{"ann@example.com"}, resp.Updated)

	ann, err := env.students.GetStudentByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	require.NotNil(t, ann.Exams[0].Set)
	assert.Equal(t, "Set B", *ann.Exams[0].Set)

	_, err = env.assignments.AssignSet(ctx, subID, dto.SetAssignDTO{SetName: "Set A", StudentEmails: []string{"bob@example.com"}})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err), "nothing updated")

	_, err = env.assignments.AssignSet(ctx, subID, dto.SetAssignDTO{SetName: "Set Z", StudentEmails: []string{"ann@example.com"}})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestSubmitExam(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	fx := env.examFixture(t)

	res, err := env.submissions.SubmitExam(ctx, dto.ExamSubmitDTO{
		StudentEmail: fx.email,
		SubjectID:    fx.subjectID,
		SelectedAnswers: []dto.AnswerSubmitDTO{
			{QuestionID: fx.setA[0], SelectedAnswerID: "B"},
			{QuestionID: fx.setA[1], SelectedAnswerID: "A"},
		},
	})
	require.NoError(t, err)

	exam := res.Exam
	assert.Equal(t, string(model.ExamStatusSubmitted), exam.Status)
	assert.Equal(t, 2, exam.Score)
	assert.Equal(t, 5, exam.TotalScore, "total covers the assigned set only")
	assert.Equal(t, 40.0, exam.Percentage)
	require.NotNil(t, exam.ExamStartTime)
	require.NotNil(t, exam.ExamEndTime)
	assert.True(t, exam.ExamEndTime.Equal(submitTime))
	assert.True(t, exam.ExamStartTime.Equal(submitTime))
	assert.Equal(t, []dto.SelectedAnswerDTO{
		{QuestionID: fx.setA[0], SelectedAnswerID: "B", IsCorrect: true, Score: 2},
		{QuestionID: fx.setA[1], SelectedAnswerID: "A", IsCorrect: false, Score: 0},
	}, exam.SelectedAnswers)

	stored, err := env.submissions.GetStudentExam(ctx, fx.email, fx.subjectID)
	require.NoError(t, err)
	assert.Equal(t, exam.Score, stored.Exam.Score)

	_, err = env.submissions.SubmitExam(ctx, dto.ExamSubmitDTO{
		StudentEmail:    fx.email,
		SubjectID:       fx.subjectID,
		SelectedAnswers: []dto.AnswerSubmitDTO{{QuestionID: fx.setA[1], SelectedAnswerID: "C"}},
	})
	assert.True(t, apperror.HasCode(err, apperror.CodeAlreadySubmitted))
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	after, err := env.submissions.GetStudentExam(ctx, fx.email, fx.subjectID)
	require.NoError(t, err)
	assert.Equal(t, stored.Exam, after.Exam, "a rejected resubmission changes nothing")
}

func TestSubmitExamRejectsQuestionOutsideSet(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	fx := env.examFixture(t)

	_, err := env.submissions.SubmitExam(ctx, dto.ExamSubmitDTO{
		StudentEmail: fx.email,
		SubjectID:    fx.subjectID,
		SelectedAnswers: []dto.AnswerSubmitDTO{
			{QuestionID: fx.setA[0], SelectedAnswerID: "B"},
			{QuestionID: fx.setB[0], SelectedAnswerID: "A"},
		},
	})
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidQuestionID))

	got, err := env.submissions.GetStudentExam(ctx, fx.email, fx.subjectID)
	require.NoError(t, err)
	assert.Equal(t, string(model.ExamStatusPending), got.Exam.Status)
	assert.Empty(t, got.Exam.SelectedAnswers)
	assert.Zero(t, got.Exam.Score)
	assert.Nil(t, got.Exam.ExamEndTime)
}

func TestSubmitExamKeepsRepeatedAnswers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	fx := env.examFixture(t)

	res, err := env.submissions.SubmitExam(ctx, dto.ExamSubmitDTO{
		StudentEmail: fx.email,
		SubjectID:    fx.subjectID,
		SelectedAnswers: []dto.AnswerSubmitDTO{
			{QuestionID: fx.setA[0], SelectedAnswerID: "A"},
			{QuestionID: fx.setA[0], SelectedAnswerID: "B"},
		},
	})
	require.NoError(t, err)

	require.Len(t, res.Exam.SelectedAnswers, 2)
	assert.False(t, res.Exam.SelectedAnswers[0].IsCorrect)
	assert.True(t, res.Exam.SelectedAnswers[1].IsCorrect)
	assert.Equal(t, 2, res.Exam.Score)
	assert.Equal(t, 5, res.Exam.TotalScore)
}

func TestSubmitExamPreconditions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	fx := env.examFixture(t)
	env.student(t, "Bob", "bob@example.com")

	submit := func(email, subjectID string) error {
		_, err := env.submissions.SubmitExam(ctx, dto.ExamSubmitDTO{StudentEmail: email, SubjectID: subjectID})
		return err
	}

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(submit("ghost@example.com", fx.subjectID)))
	assert.True(t, apperror.HasCode(submit("bob@example.com", fx.subjectID), apperror.CodeNoExamFound))

	_, err := env.assignments.AssignExam(ctx, dto.ExamAssignDTO{StudentEmail: "bob@example.com", SubjectID: fx.subjectID})
	require.NoError(t, err)
	assert.True(t, apperror.HasCode(submit("bob@example.com", fx.subjectID), apperror.CodeSetNotAssigned))
}

func TestSubmitExamUnscopedFallback(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, true)
	fx := env.examFixture(t)
	env.student(t, "Bob", "bob@example.com")
	_, err := env.assignments.AssignExam(ctx, dto.ExamAssignDTO{StudentEmail: "bob@example.com", SubjectID: fx.subjectID})
	require.NoError(t, err)

	res, err := env.submissions.SubmitExam(ctx, dto.ExamSubmitDTO{
		StudentEmail:    "bob@example.com",
		SubjectID:       fx.subjectID,
		SelectedAnswers: []dto.AnswerSubmitDTO{{QuestionID: fx.setB[0], SelectedAnswerID: "A"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Exam.Score)
	assert.Equal(t, 6, res.Exam.TotalScore, "the whole bank is the pool")
}

func TestSubmitExamConcurrentSubmissions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	fx := env.examFixture(t)

	req := dto.ExamSubmitDTO{
		StudentEmail:    fx.email,
		SubjectID:       fx.subjectID,
		SelectedAnswers: []dto.AnswerSubmitDTO{{QuestionID: fx.setA[0], SelectedAnswerID: "B"}},
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.submissions.SubmitExam(ctx, req)
		}(i)
	}
	wg.Wait()

	succeeded, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case apperror.KindOf(err) == apperror.KindConflict:
			conflicts++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicts)
}

func TestStartExamAndPaper(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	fx := env.examFixture(t)

	started, err := env.submissions.StartExam(ctx, dto.ExamStartDTO{StudentEmail: fx.email, SubjectID: fx.subjectID})
	require.NoError(t, err)
	require.NotNil(t, started.Exam.ExamStartTime)
	assert.True(t, started.Exam.ExamStartTime.Equal(submitTime))
	assert.Equal(t, string(model.ExamStatusPending), started.Exam.Status)

	paper, err := env.submissions.GetExamPaper(ctx, fx.email, fx.subjectID)
	require.NoError(t, err)
	assert.Equal(t, "Set A", paper.Set)
	assert.Equal(t, 2, paper.TotalQuestions)
	assert.Equal(t, 5, paper.TotalScore)
	require.Len(t, paper.Questions, 2)
	assert.Equal(t, fx.setA, []string{paper.Questions[0].QuestionID, paper.Questions[1].QuestionID})
	assert.Equal(t, []int{1, 2}, []int{paper.Questions[0].SetIndex, paper.Questions[1].SetIndex})
	assert.Equal(t, []dto.PaperOptionDTO{{ID: "A", Text: "3"}, {ID: "B", Text: "4"}}, paper.Questions[0].AnswerOptions)

	_, err = env.submissions.SubmitExam(ctx, dto.ExamSubmitDTO{StudentEmail: fx.email, SubjectID: fx.subjectID})
	require.NoError(t, err)
	_, err = env.submissions.StartExam(ctx, dto.ExamStartDTO{StudentEmail: fx.email, SubjectID: fx.subjectID})
	assert.True(t, apperror.HasCode(err, apperror.CodeAlreadySubmitted))
}
