package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examdesk/internal/controller"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/service"
)

type DepartmentController struct {
	departmentService service.DepartmentService
}

func NewDepartmentController(departmentService service.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

func (c *DepartmentController) RegisterRoutes(rg *gin.RouterGroup) {
	departments := rg.Group("/departments")
	departments.POST("", c.CreateDepartment)
	departments.GET("", c.GetAllDepartments)
	departments.GET("/names", c.GetDepartmentNames)
	departments.PUT("/:department_id", c.UpdateDepartment)
	departments.POST("/:department_id/classes", c.AddClasses)
	departments.GET("/:department_id/classes", c.GetClasses)
}

// CreateDepartment godoc
// @Summary (Admin) Create a department
// @Tags Admin - Departments
// @Accept json
// @Produce json
// @Param department body dto.DepartmentCreateDTO true "Department name and optional classes"
// @Success 201 {object} dto.DepartmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Department name already taken"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.DepartmentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "create department")
		return
	}
	resp, err := c.departmentService.CreateDepartment(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "create department")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllDepartments godoc
// @Summary (Admin) List departments
// @Tags Admin - Departments
// @Produce json
// @Success 200 {array} dto.DepartmentResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	resp, err := c.departmentService.GetAllDepartments(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "list departments")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetDepartmentNames godoc
// @Summary (Admin) List department names
// @Tags Admin - Departments
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/departments/names [get]
func (c *DepartmentController) GetDepartmentNames(ctx *gin.Context) {
	names, err := c.departmentService.GetDepartmentNames(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "list department names")
		return
	}
	ctx.JSON(http.StatusOK, names)
}

// UpdateDepartment godoc
// @Summary (Admin) Update a department
// @Description Only the fields present in the body are changed. Classes, when present, replace the whole list.
// @Tags Admin - Departments
// @Accept json
// @Produce json
// @Param department_id path string true "Department ID"
// @Param department body dto.DepartmentUpdateDTO true "Fields to change"
// @Success 200 {object} dto.DepartmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /admin/departments/{department_id} [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	var req dto.DepartmentUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "update department")
		return
	}
	resp, err := c.departmentService.UpdateDepartment(ctx.Request.Context(), ctx.Param("department_id"), req)
	if err != nil {
		controller.RespondError(ctx, err, "update department")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// AddClasses godoc
// @Summary (Admin) Add classes to a department
// @Description Classes whose name already exists (case-insensitive) are skipped and reported.
// @Tags Admin - Departments
// @Accept json
// @Produce json
// @Param department_id path string true "Department ID"
// @Param classes body dto.AddClassesDTO true "Classes to add"
// @Success 200 {object} dto.AddClassesResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/departments/{department_id}/classes [post]
func (c *DepartmentController) AddClasses(ctx *gin.Context) {
	var req dto.AddClassesDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "add classes")
		return
	}
	resp, err := c.departmentService.AddClasses(ctx.Request.Context(), ctx.Param("department_id"), req)
	if err != nil {
		controller.RespondError(ctx, err, "add classes")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetClasses godoc
// @Summary (Admin) List the classes of a department
// @Tags Admin - Departments
// @Produce json
// @Param department_id path string true "Department ID"
// @Success 200 {array} dto.ClassDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/departments/{department_id}/classes [get]
func (c *DepartmentController) GetClasses(ctx *gin.Context) {
	classes, err := c.departmentService.GetClasses(ctx.Request.Context(), ctx.Param("department_id"))
	if err != nil {
		controller.RespondError(ctx, err, "get classes")
		return
	}
	ctx.JSON(http.StatusOK, classes)
}
