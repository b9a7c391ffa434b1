package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/examdesk/database"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/idgen"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var submitTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// testEnv wires every service against a private in-memory database.
type testEnv struct {
	departments DepartmentService
	subjects    SubjectService
	banks       QuestionBankService
	students    StudentService
	assignments ExamAssignmentService
	submissions ExamSubmissionService
	studentRepo repository.StudentRepository
}

// openTestDB returns a migrated private in-memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestEnv(t *testing.T, unscopedFallback bool) *testEnv {
	t.Helper()
	db := openTestDB(t)

	ids := idgen.NewSequence()
	departmentRepo := repository.NewDepartmentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	bankRepo := repository.NewQuestionBankRepository(db)
	studentRepo := repository.NewStudentRepository(db)

	submissions := NewExamSubmissionService(studentRepo, bankRepo, unscopedFallback).(*examSubmissionService)
	submissions.now = func() time.Time { return submitTime }

	return &testEnv{
		departments: NewDepartmentService(departmentRepo, ids),
		subjects:    NewSubjectService(subjectRepo, departmentRepo, ids),
		banks:       NewQuestionBankService(bankRepo, subjectRepo, ids),
		students:    NewStudentService(studentRepo, ids),
		assignments: NewExamAssignmentService(subjectRepo, studentRepo, 4),
		submissions: submissions,
		studentRepo: studentRepo,
	}
}

func (e *testEnv) department(t *testing.T, name string) string {
	t.Helper()
	dep, err := e.departments.CreateDepartment(context.Background(), dto.DepartmentCreateDTO{Name: name})
	require.NoError(t, err)
	return dep.DepartmentID
}

func (e *testEnv) subject(t *testing.T, departmentID, status string, sets ...dto.SetDTO) string {
	t.Helper()
	sub, err := e.subjects.CreateSubject(context.Background(), dto.SubjectCreateDTO{
		Name:          "Physics",
		Class:         "10A",
		DepartmentID:  departmentID,
		Status:        status,
		AutoCalculate: true,
		Sets:          sets,
	})
	require.NoError(t, err)
	return sub.SubjectID
}

func (e *testEnv) student(t *testing.T, name, email string) string {
	t.Helper()
	st, err := e.students.AddStudent(context.Background(), dto.StudentCreateDTO{Name: name, Email: email})
	require.NoError(t, err)
	return st.StudentID
}

// examFixture is an active subject with sets "Set A" and "Set B", a bank of
// three questions and one student assigned to Set A.
type examFixture struct {
	subjectID string
	examID    string
	email     string
	setA      []string
	setB      []string
}

func (e *testEnv) examFixture(t *testing.T) examFixture {
	t.Helper()
	ctx := context.Background()

	depID := e.department(t, "Science")
	subID := e.subject(t, depID, "Active", dto.SetDTO{Name: "Set A", Students: 2}, dto.SetDTO{Name: "Set B", Students: 1})

	bank, err := e.banks.CreateQuestionBank(ctx, dto.QuestionBankCreateDTO{SubjectID: subID, Class: "10A"})
	require.NoError(t, err)
	bank, err = e.banks.AddQuestions(ctx, bank.ExamID, dto.AddQuestionsDTO{Questions: []dto.QuestionCreateDTO{
		{QuestionText: "2+2?", AnswerOptions: options("3", "4"), CorrectAnswerID: "B", Score: 2, Set: "Set A"},
		{QuestionText: "Capital of France?", AnswerOptions: options("Rome", "Oslo", "Paris"), CorrectAnswerID: "C", Score: 3, Set: "set a"},
		{QuestionText: "Largest planet?", AnswerOptions: options("Jupiter", "Mars"), CorrectAnswerID: "A", Set: "Set B"},
	}})
	require.NoError(t, err)

	email := "ann@example.com"
	e.student(t, "Ann", email)
	_, err = e.assignments.AssignExam(ctx, dto.ExamAssignDTO{StudentEmail: email, SubjectID: subID})
	require.NoError(t, err)
	_, err = e.assignments.AssignSet(ctx, subID, dto.SetAssignDTO{SetName: "Set A", StudentEmails: []string{email}})
	require.NoError(t, err)

	fx := examFixture{subjectID: subID, examID: bank.ExamID, email: email}
	for _, q := range bank.Questions {
		if q.Set == "Set A" {
			fx.setA = append(fx.setA, q.QuestionID)
		} else {
			fx.setB = append(fx.setB, q.QuestionID)
		}
	}
	require.Len(t, fx.setA, 2)
	require.Len(t, fx.setB, 1)
	return fx
}
