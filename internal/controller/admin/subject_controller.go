package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examdesk/internal/controller"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/service"
)

type SubjectController struct {
	subjectService service.SubjectService
}

func NewSubjectController(subjectService service.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

func (c *SubjectController) RegisterRoutes(rg *gin.RouterGroup) {
	subjects := rg.Group("/subjects")
	subjects.POST("", c.CreateSubject)
	subjects.GET("", c.GetSubjects)
	subjects.GET("/:subject_id", c.GetSubject)
	subjects.PUT("/:subject_id", c.UpdateSubject)
	subjects.DELETE("/:subject_id", c.DeleteSubject)
	subjects.GET("/:subject_id/total-students", c.GetTotalStudents)

	subjects.GET("/:subject_id/sets", c.GetSets)
	subjects.PUT("/:subject_id/sets", c.ReplaceSets)
	subjects.POST("/:subject_id/sets", c.AddSet)
	subjects.DELETE("/:subject_id/sets/:set_name", c.RemoveSet)
}

// CreateSubject godoc
// @Summary (Admin) Create a subject with its sets
// @Description total_students must equal the sum of the set sizes unless auto_calculate is set.
// @Tags Admin - Subjects
// @Accept json
// @Produce json
// @Param subject body dto.SubjectCreateDTO true "Subject and sets"
// @Success 201 {object} dto.SubjectResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input, duplicate set name or count mismatch"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /admin/subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.SubjectCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "create subject")
		return
	}
	resp, err := c.subjectService.CreateSubject(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "create subject")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetSubjects godoc
// @Summary (Admin) List subjects
// @Tags Admin - Subjects
// @Produce json
// @Param department_id query string false "Only subjects of this department"
// @Success 200 {array} dto.SubjectResponseDTO
// @Router /admin/subjects [get]
func (c *SubjectController) GetSubjects(ctx *gin.Context) {
	resp, err := c.subjectService.GetSubjects(ctx.Request.Context(), ctx.Query("department_id"))
	if err != nil {
		controller.RespondError(ctx, err, "list subjects")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSubject godoc
// @Summary (Admin) Get a subject
// @Tags Admin - Subjects
// @Produce json
// @Param subject_id path string true "Subject ID"
// @Success 200 {object} dto.SubjectResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subjects/{subject_id} [get]
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	resp, err := c.subjectService.GetSubject(ctx.Request.Context(), ctx.Param("subject_id"))
	if err != nil {
		controller.RespondError(ctx, err, "get subject")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateSubject godoc
// @Summary (Admin) Update a subject
// @Tags Admin - Subjects
// @Accept json
// @Produce json
// @Param subject_id path string true "Subject ID"
// @Param subject body dto.SubjectUpdateDTO true "Fields to change"
// @Success 200 {object} dto.SubjectResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subjects/{subject_id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	var req dto.SubjectUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "update subject")
		return
	}
	resp, err := c.subjectService.UpdateSubject(ctx.Request.Context(), ctx.Param("subject_id"), req)
	if err != nil {
		controller.RespondError(ctx, err, "update subject")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteSubject godoc
// @Summary (Admin) Delete a subject
// @Tags Admin - Subjects
// @Produce json
// @Param subject_id path string true "Subject ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subjects/{subject_id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	if err := c.subjectService.DeleteSubject(ctx.Request.Context(), ctx.Param("subject_id")); err != nil {
		controller.RespondError(ctx, err, "delete subject")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Subject deleted"})
}

// GetTotalStudents godoc
// @Summary (Admin) Total students of a subject
// @Tags Admin - Subjects
// @Produce json
// @Param subject_id path string true "Subject ID"
// @Success 200 {object} dto.TotalStudentsResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subjects/{subject_id}/total-students [get]
func (c *SubjectController) GetTotalStudents(ctx *gin.Context) {
	resp, err := c.subjectService.GetTotalStudents(ctx.Request.Context(), ctx.Param("subject_id"))
	if err != nil {
		controller.RespondError(ctx, err, "get total students")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSets godoc
// @Summary (Admin) Sets of a subject
// @Tags Admin - Sets
// @Produce json
// @Param subject_id path string true "Subject ID"
// @Success 200 {object} dto.SetsResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subjects/{subject_id}/sets [get]
func (c *SubjectController) GetSets(ctx *gin.Context) {
	resp, err := c.subjectService.GetSets(ctx.Request.Context(), ctx.Param("subject_id"))
	if err != nil {
		controller.RespondError(ctx, err, "get sets")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ReplaceSets godoc
// @Summary (Admin) Replace the sets of a subject
// @Description The new sets must add up to the subject's total students unless auto_calculate is set.
// @Tags Admin - Sets
// @Accept json
// @Produce json
// @Param subject_id path string true "Subject ID"
// @Param sets body dto.SetsReplaceDTO true "New set list"
// @Success 200 {object} dto.SetsResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subjects/{subject_id}/sets [put]
func (c *SubjectController) ReplaceSets(ctx *gin.Context) {
	var req dto.SetsReplaceDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "replace sets")
		return
	}
	resp, err := c.subjectService.ReplaceSets(ctx.Request.Context(), ctx.Param("subject_id"), req)
	if err != nil {
		controller.RespondError(ctx, err, "replace sets")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// AddSet godoc
// @Summary (Admin) Append a set to a subject
// @Tags Admin - Sets
// @Accept json
// @Produce json
// @Param subject_id path string true "Subject ID"
// @Param set body dto.SetDTO true "Set to append"
// @Success 201 {object} dto.SetsResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate set name"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subjects/{subject_id}/sets [post]
func (c *SubjectController) AddSet(ctx *gin.Context) {
	var req dto.SetDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "add set")
		return
	}
	resp, err := c.subjectService.AddSet(ctx.Request.Context(), ctx.Param("subject_id"), req)
	if err != nil {
		controller.RespondError(ctx, err, "add set")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// RemoveSet godoc
// @Summary (Admin) Remove a set and redistribute its students
// @Description The remaining sets are renamed "Set 1".."Set n". The last set cannot be removed.
// @Tags Admin - Sets
// @Produce json
// @Param subject_id path string true "Subject ID"
// @Param set_name path string true "Set name (case-insensitive)"
// @Success 200 {object} dto.SetsResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Only one set left"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subjects/{subject_id}/sets/{set_name} [delete]
func (c *SubjectController) RemoveSet(ctx *gin.Context) {
	resp, err := c.subjectService.RemoveSet(ctx.Request.Context(), ctx.Param("subject_id"), ctx.Param("set_name"))
	if err != nil {
		controller.RespondError(ctx, err, "remove set")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
