package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examdesk/database"
	"github.com/lshigami/examdesk/internal/apperror"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/idgen"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/lshigami/examdesk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studentEmail = "ann@example.com"

type examSetup struct {
	router    *gin.Engine
	subjectID string
	// question ids of Set A in paper order
	questions []string
	outside   string
}

func newExamSetup(t *testing.T) examSetup {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	ids := idgen.NewSequence()
	departmentRepo := repository.NewDepartmentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	bankRepo := repository.NewQuestionBankRepository(db)
	studentRepo := repository.NewStudentRepository(db)

	dep, err := service.NewDepartmentService(departmentRepo, ids).CreateDepartment(ctx, dto.DepartmentCreateDTO{Name: "Science"})
	require.NoError(t, err)
	sub, err := service.NewSubjectService(subjectRepo, departmentRepo, ids).CreateSubject(ctx, dto.SubjectCreateDTO{
		Name: "Physics", Class: "10A", DepartmentID: dep.DepartmentID, Status: "Active", AutoCalculate: true,
		Sets: []dto.SetDTO{{Name: "Set A", Students: 1}, {Name: "Set B", Students: 1}},
	})
	require.NoError(t, err)

	banks := service.NewQuestionBankService(bankRepo, subjectRepo, ids)
	bank, err := banks.CreateQuestionBank(ctx, dto.QuestionBankCreateDTO{SubjectID: sub.SubjectID, Class: "10A"})
	require.NoError(t, err)
	opts := []dto.AnswerOptionCreateDTO{{Text: "x"}, {Text: "y"}, {Text: "z"}}
	bank, err = banks.AddQuestions(ctx, bank.ExamID, dto.AddQuestionsDTO{Questions: []dto.QuestionCreateDTO{
		{QuestionText: "Q1", AnswerOptions: opts, CorrectAnswerID: "A", Score: 2, Set: "Set A"},
		{QuestionText: "Q2", AnswerOptions: opts, CorrectAnswerID: "C", Score: 3, Set: "Set A"},
		{QuestionText: "Q3", AnswerOptions: opts, CorrectAnswerID: "B", Set: "Set B"},
	}})
	require.NoError(t, err)

	_, err = service.NewStudentService(studentRepo, ids).AddStudent(ctx, dto.StudentCreateDTO{Name: "Ann", Email: studentEmail})
	require.NoError(t, err)
	assignments := service.NewExamAssignmentService(subjectRepo, studentRepo, 1)
	_, err = assignments.AssignExam(ctx, dto.ExamAssignDTO{StudentEmail: studentEmail, SubjectID: sub.SubjectID})
	require.NoError(t, err)
	_, err = assignments.AssignSet(ctx, sub.SubjectID, dto.SetAssignDTO{SetName: "Set A", StudentEmails: []string{studentEmail}})
	require.NoError(t, err)

	r := gin.New()
	NewExamController(service.NewExamSubmissionService(studentRepo, bankRepo, false)).RegisterRoutes(r.Group("/api/v1"))

	return examSetup{
		router:    r,
		subjectID: sub.SubjectID,
		questions: []string{bank.Questions[0].QuestionID, bank.Questions[1].QuestionID},
		outside:   bank.Questions[2].QuestionID,
	}
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitExamFlow(t *testing.T) {
	s := newExamSetup(t)

	w := do(t, s.router, http.MethodPost, "/api/v1/exams/start", dto.ExamStartDTO{StudentEmail: studentEmail, SubjectID: s.subjectID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, s.router, http.MethodPost, "/api/v1/exams/submit", dto.ExamSubmitDTO{
		StudentEmail: studentEmail,
		SubjectID:    s.subjectID,
		SelectedAnswers: []dto.AnswerSubmitDTO{
			{QuestionID: s.questions[0], SelectedAnswerID: "A"},
			{QuestionID: s.outside, SelectedAnswerID: "B"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, apperror.CodeInvalidQuestionID, errResp.Code)

	w = do(t, s.router, http.MethodPost, "/api/v1/exams/submit", dto.ExamSubmitDTO{
		StudentEmail: studentEmail,
		SubjectID:    s.subjectID,
		SelectedAnswers: []dto.AnswerSubmitDTO{
			{QuestionID: s.questions[0], SelectedAnswerID: "A"},
			{QuestionID: s.questions[1], SelectedAnswerID: "B"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result dto.ExamResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "submitted", result.Exam.Status)
	assert.Equal(t, 2, result.Exam.Score)
	assert.Equal(t, 5, result.Exam.TotalScore)
	assert.NotNil(t, result.Exam.ExamEndTime)

	w = do(t, s.router, http.MethodPost, "/api/v1/exams/submit", dto.ExamSubmitDTO{
		StudentEmail:    studentEmail,
		SubjectID:       s.subjectID,
		SelectedAnswers: []dto.AnswerSubmitDTO{{QuestionID: s.questions[1], SelectedAnswerID: "C"}},
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, s.router, http.MethodGet, "/api/v1/students/"+studentEmail+"/exams/"+s.subjectID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stored dto.ExamResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	assert.Equal(t, 2, stored.Exam.Score, "the rejected resubmission left the result alone")
	assert.Len(t, stored.Exam.SelectedAnswers, 2)
}

func TestSubmitExamBindingAndLookups(t *testing.T) {
	s := newExamSetup(t)

	w := do(t, s.router, http.MethodPost, "/api/v1/exams/submit", map[string]any{"student_email": studentEmail})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s.router, http.MethodPost, "/api/v1/exams/submit", dto.ExamSubmitDTO{
		StudentEmail:    "ghost@example.com",
		SubjectID:       s.subjectID,
		SelectedAnswers: []dto.AnswerSubmitDTO{},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s.router, http.MethodGet, "/api/v1/students/"+studentEmail+"/exams/SUB-999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, apperror.CodeNoExamFound, errResp.Code)
}

func TestExamPaperHidesAnswers(t *testing.T) {
	s := newExamSetup(t)

	w := do(t, s.router, http.MethodGet, "/api/v1/students/"+studentEmail+"/exams/"+s.subjectID+"/paper", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "correct_answer_id")

	var paper dto.ExamPaperDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paper))
	assert.Equal(t, "Set A", paper.Set)
	assert.Equal(t, 5, paper.TotalScore)
	require.Len(t, paper.Questions, 2)
	assert.Equal(t, s.questions, []string{paper.Questions[0].QuestionID, paper.Questions[1].QuestionID})
}
