package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examdesk/internal/controller"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/service"
)

type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

func (c *StudentController) RegisterRoutes(rg *gin.RouterGroup) {
	students := rg.Group("/students")
	students.POST("", c.AddStudent)
	students.POST("/batch", c.AddStudents)
	students.GET("", c.GetStudents)
	students.GET("/by-email/:email", c.GetStudentByEmail)
	students.GET("/:student_id", c.GetStudent)
}

// AddStudent godoc
// @Summary (Admin) Register a student
// @Tags Admin - Students
// @Accept json
// @Produce json
// @Param student body dto.StudentCreateDTO true "Student"
// @Success 201 {object} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid email or missing fields"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /admin/students [post]
func (c *StudentController) AddStudent(ctx *gin.Context) {
	var req dto.StudentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "add student")
		return
	}
	resp, err := c.studentService.AddStudent(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "add student")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// AddStudents godoc
// @Summary (Admin) Register several students
// @Description Either every student is registered or none is; problems are listed in details.
// @Tags Admin - Students
// @Accept json
// @Produce json
// @Param students body dto.StudentBatchCreateDTO true "Students"
// @Success 201 {array} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /admin/students/batch [post]
func (c *StudentController) AddStudents(ctx *gin.Context) {
	var req dto.StudentBatchCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err, "add students")
		return
	}
	resp, err := c.studentService.AddStudents(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "add students")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetStudents godoc
// @Summary (Admin) List students
// @Tags Admin - Students
// @Produce json
// @Param department_id query string false "Only students of this department"
// @Success 200 {array} dto.StudentResponseDTO
// @Router /admin/students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	resp, err := c.studentService.GetStudents(ctx.Request.Context(), ctx.Query("department_id"))
	if err != nil {
		controller.RespondError(ctx, err, "list students")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetStudent godoc
// @Summary (Admin) Get a student
// @Tags Admin - Students
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/students/{student_id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	resp, err := c.studentService.GetStudent(ctx.Request.Context(), ctx.Param("student_id"))
	if err != nil {
		controller.RespondError(ctx, err, "get student")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetStudentByEmail godoc
// @Summary (Admin) Find a student by email
// @Tags Admin - Students
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/students/by-email/{email} [get]
func (c *StudentController) GetStudentByEmail(ctx *gin.Context) {
	resp, err := c.studentService.GetStudentByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		controller.RespondError(ctx, err, "get student by email")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
