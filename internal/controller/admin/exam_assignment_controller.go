package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examdesk/internal/controller"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/service"
)

type ExamAssignmentController struct {
	assignmentService service.ExamAssignmentService
}

func NewExamAssignmentController(assignmentService service.ExamAssignmentService) *ExamAssignmentController {
	return &ExamAssignmentController{assignmentService: assignmentService}
}

func (c *ExamAssignmentController) RegisterRoutes(rg *gin.RouterGroup) {
	assignments := rg.Group("/exam-assignments")
	assignments.POST("", c.AssignExam)
	assignments.POST("/batch", c.AssignExamBatch)

	rg.POST("/subjects/:subject_id/set-assignments", c.AssignSet)
}

// AssignExam godoc
// @Summary (Admin) Assign an exam to a student
// @Tags Admin - Exam Assignment
// @Accept json
// @Produce json
// @Param assignment body dto.ExamAssignDTO true "Student email and subject"
// @Success 201 {object} dto.ExamAssignResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Subject is not active"
// @Failure 404 {object} dto.ErrorResponse "Subject or student not found"
// @Failure 409 {object} dto.ErrorResponse "Already assigned"
// @Router /admin/exam-assignments [post]
func (c *ExamAssignmentController) AssignExam(ctx *gin.Context) {
	var req dto.ExamAssignDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "assign exam")
		return
	}
	resp, err := c.assignmentService.AssignExam(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "assign exam")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// AssignExamBatch godoc
// @Summary (Admin) Assign an exam to many students
// @Description Every email lands in exactly one of success, already_exists, not_found or failed.
// @Tags Admin - Exam Assignment
// @Accept json
// @Produce json
// @Param assignment body dto.ExamBatchAssignDTO true "Subject and student emails"
// @Success 200 {object} dto.ExamBatchAssignResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Subject not found or inactive"
// @Router /admin/exam-assignments/batch [post]
func (c *ExamAssignmentController) AssignExamBatch(ctx *gin.Context) {
	var req dto.ExamBatchAssignDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "assign exam batch")
		return
	}
	resp, err := c.assignmentService.AssignExamBatch(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "assign exam batch")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// AssignSet godoc
// @Summary (Admin) Put students of a subject into a set
// @Description Students without an exam for the subject are skipped.
// @Tags Admin - Exam Assignment
// @Accept json
// @Produce json
// @Param subject_id path string true "Subject ID"
// @Param assignment body dto.SetAssignDTO true "Set name and student emails"
// @Success 200 {object} dto.SetAssignResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Subject or set not found, or no student updated"
// @Router /admin/subjects/{subject_id}/set-assignments [post]
func (c *ExamAssignmentController) AssignSet(ctx *gin.Context) {
	var req dto.SetAssignDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "assign set")
		return
	}
	resp, err := c.assignmentService.AssignSet(ctx.Request.Context(), ctx.Param("subject_id"), req)
	if err != nil {
		controller.RespondError(ctx, err, "assign set")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
