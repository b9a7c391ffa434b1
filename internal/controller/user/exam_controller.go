package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examdesk/internal/controller"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/service"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	submissionService service.ExamSubmissionService
}

func NewExamController(submissionService service.ExamSubmissionService) *ExamController {
	return &ExamController{submissionService: submissionService}
}

func (c *ExamController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/exams/start", c.StartExam)
	rg.POST("/exams/submit", c.SubmitExam)
	rg.GET("/students/:email/exams/:subject_id", c.GetStudentExam)
	rg.GET("/students/:email/exams/:subject_id/paper", c.GetExamPaper)
}

// StartExam godoc
// @Summary (Student) Start an exam
// @Description Records the start time on the first call; later calls return the exam unchanged.
// @Tags Student - Exams
// @Accept json
// @Produce json
// @Param exam body dto.ExamStartDTO true "Student email and subject"
// @Success 200 {object} dto.ExamResultDTO
// @Failure 404 {object} dto.ErrorResponse "Student or exam not found"
// @Failure 409 {object} dto.ErrorResponse "Exam already submitted"
// @Router /exams/start [post]
func (c *ExamController) StartExam(ctx *gin.Context) {
	var req dto.ExamStartDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "start exam")
		return
	}
	resp, err := c.submissionService.StartExam(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "start exam")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitExam godoc
// @Summary (Student) Submit answers
// @Description Answers are graded against the student's assigned set. A single unknown question id rejects the whole submission.
// @Tags Student - Exams
// @Accept json
// @Produce json
// @Param submission body dto.ExamSubmitDTO true "Answers"
// @Success 200 {object} dto.ExamResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question id or no set assigned"
// @Failure 404 {object} dto.ErrorResponse "Student, exam or question bank not found"
// @Failure 409 {object} dto.ErrorResponse "Exam already submitted"
// @Router /exams/submit [post]
func (c *ExamController) SubmitExam(ctx *gin.Context) {
	var req dto.ExamSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "submit exam")
		return
	}
	log.Info().Str("email", req.StudentEmail).Str("subjectID", req.SubjectID).Int("answers", len(req.SelectedAnswers)).Msg("Exam submission received")

	resp, err := c.submissionService.SubmitExam(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "submit exam")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetStudentExam godoc
// @Summary (Student) Exam status and result
// @Tags Student - Exams
// @Produce json
// @Param email path string true "Student email"
// @Param subject_id path string true "Subject ID"
// @Success 200 {object} dto.ExamResultDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{email}/exams/{subject_id} [get]
func (c *ExamController) GetStudentExam(ctx *gin.Context) {
	resp, err := c.submissionService.GetStudentExam(ctx.Request.Context(), ctx.Param("email"), ctx.Param("subject_id"))
	if err != nil {
		controller.RespondError(ctx, err, "get student exam")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetExamPaper godoc
// @Summary (Student) Question paper for the assigned set
// @Description Questions in set order, without correct answers.
// @Tags Student - Exams
// @Produce json
// @Param email path string true "Student email"
// @Param subject_id path string true "Subject ID"
// @Success 200 {object} dto.ExamPaperDTO
// @Failure 400 {object} dto.ErrorResponse "No set assigned"
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{email}/exams/{subject_id}/paper [get]
func (c *ExamController) GetExamPaper(ctx *gin.Context) {
	resp, err := c.submissionService.GetExamPaper(ctx.Request.Context(), ctx.Param("email"), ctx.Param("subject_id"))
	if err != nil {
		controller.RespondError(ctx, err, "get exam paper")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
