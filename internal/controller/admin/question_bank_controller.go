package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examdesk/internal/controller"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/service"
)

type QuestionBankController struct {
	questionBankService service.QuestionBankService
}

func NewQuestionBankController(questionBankService service.QuestionBankService) *QuestionBankController {
	return &QuestionBankController{questionBankService: questionBankService}
}

func (c *QuestionBankController) RegisterRoutes(rg *gin.RouterGroup) {
	banks := rg.Group("/question-banks")
	banks.POST("", c.CreateQuestionBank)
	banks.GET("", c.GetQuestionBanks)
	banks.GET("/:exam_id/questions", c.GetQuestions)
	banks.POST("/:exam_id/questions", c.AddQuestions)
	banks.PATCH("/:exam_id/questions/:question_id", c.UpdateQuestion)
	banks.GET("/:exam_id/sets", c.GetSetSummary)

	rg.GET("/subjects/:subject_id/questions", c.GetSubjectQuestions)
}

// CreateQuestionBank godoc
// @Summary (Admin) Create the question bank of a subject
// @Tags Admin - Question Banks
// @Accept json
// @Produce json
// @Param bank body dto.QuestionBankCreateDTO true "Subject and class"
// @Success 201 {object} dto.QuestionBankResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 409 {object} dto.ErrorResponse "Subject already has a bank"
// @Router /admin/question-banks [post]
func (c *QuestionBankController) CreateQuestionBank(ctx *gin.Context) {
	var req dto.QuestionBankCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "create question bank")
		return
	}
	resp, err := c.questionBankService.CreateQuestionBank(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "create question bank")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetQuestionBanks godoc
// @Summary (Admin) List question banks
// @Tags Admin - Question Banks
// @Produce json
// @Param subject_id query string false "Only the bank of this subject"
// @Success 200 {array} dto.QuestionBankResponseDTO
// @Router /admin/question-banks [get]
func (c *QuestionBankController) GetQuestionBanks(ctx *gin.Context) {
	resp, err := c.questionBankService.GetQuestionBanks(ctx.Request.Context(), ctx.Query("subject_id"))
	if err != nil {
		controller.RespondError(ctx, err, "list question banks")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetQuestions godoc
// @Summary (Admin) Questions of a bank
// @Description With set, only that set's questions are returned, ordered by set index.
// @Tags Admin - Question Banks
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Param set query string false "Set name"
// @Success 200 {object} dto.SetQuestionsResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/question-banks/{exam_id}/questions [get]
func (c *QuestionBankController) GetQuestions(ctx *gin.Context) {
	resp, err := c.questionBankService.GetQuestions(ctx.Request.Context(), ctx.Param("exam_id"), ctx.Query("set"))
	if err != nil {
		controller.RespondError(ctx, err, "get questions")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// AddQuestions godoc
// @Summary (Admin) Append questions to a bank
// @Description Options are lettered A, B, C... by position; correct_answer_id refers to those letters.
// @Tags Admin - Question Banks
// @Accept json
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Param questions body dto.AddQuestionsDTO true "Questions to append"
// @Success 201 {object} dto.QuestionBankResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/question-banks/{exam_id}/questions [post]
func (c *QuestionBankController) AddQuestions(ctx *gin.Context) {
	var req dto.AddQuestionsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "add questions")
		return
	}
	resp, err := c.questionBankService.AddQuestions(ctx.Request.Context(), ctx.Param("exam_id"), req)
	if err != nil {
		controller.RespondError(ctx, err, "add questions")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateQuestion godoc
// @Summary (Admin) Edit one question
// @Tags Admin - Question Banks
// @Accept json
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Param question_id path string true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "Fields to change"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/question-banks/{exam_id}/questions/{question_id} [patch]
func (c *QuestionBankController) UpdateQuestion(ctx *gin.Context) {
	var req dto.QuestionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "update question")
		return
	}
	resp, err := c.questionBankService.UpdateQuestion(ctx.Request.Context(), ctx.Param("exam_id"), ctx.Param("question_id"), req)
	if err != nil {
		controller.RespondError(ctx, err, "update question")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSetSummary godoc
// @Summary (Admin) Question count and score per set
// @Tags Admin - Question Banks
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Success 200 {array} dto.SetQuestionCountDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/question-banks/{exam_id}/sets [get]
func (c *QuestionBankController) GetSetSummary(ctx *gin.Context) {
	resp, err := c.questionBankService.GetSetSummary(ctx.Request.Context(), ctx.Param("exam_id"))
	if err != nil {
		controller.RespondError(ctx, err, "get set summary")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSubjectQuestions godoc
// @Summary (Admin) Questions of a subject's bank
// @Tags Admin - Question Banks
// @Produce json
// @Param subject_id path string true "Subject ID"
// @Param set query string false "Set name"
// @Success 200 {object} dto.SetQuestionsResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subjects/{subject_id}/questions [get]
func (c *QuestionBankController) GetSubjectQuestions(ctx *gin.Context) {
	resp, err := c.questionBankService.GetSubjectQuestions(ctx.Request.Context(), ctx.Param("subject_id"), ctx.Query("set"))
	if err != nil {
		controller.RespondError(ctx, err, "get subject questions")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
