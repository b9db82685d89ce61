package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolfm/internal/app/models/dto"
	"github.com/yigit/schoolfm/internal/app/services"
	"github.com/yigit/schoolfm/internal/middleware"
)

// StudentController handles student endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetActiveStudents lists active students
// @Summary List active students
// @Description class_name is "<class> <section>", null for students without a section.
// @Tags students
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.Student}
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [get]
func (c *StudentController) GetActiveStudents(ctx *gin.Context) {
	students, err := c.studentService.GetActiveStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, students)
}

// GetArchivedStudents lists students that have left
// @Summary List archived students
// @Tags students
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.Student}
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/archived [get]
func (c *StudentController) GetArchivedStudents(ctx *gin.Context) {
	students, err := c.studentService.GetArchivedStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, students)
}

// CreateStudent enrolls a student
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown section/bus stop"
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	id, err := c.studentService.CreateStudent(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, id)
}

// UpdateStudent replaces a student's attributes
// @Summary Update a student
// @Description Full replace of every attribute except status. changes is 0 when the student does not exist.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.StudentRequest true "Student"
// @Success 200 {object} dto.ChangesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}

	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	changes, err := c.studentService.UpdateStudent(ctx, id, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondChanges(ctx, changes)
}

// ArchiveStudent marks a student as Left
// @Summary Archive a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.ChangesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id}/archive [put]
func (c *StudentController) ArchiveStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}

	changes, err := c.studentService.ArchiveStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondChanges(ctx, changes)
}

// GetStudentFees lists a student's fees
// @Summary List a student's fees
// @Description Ordered by due date, undated fees last.
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.ListResponse{data=[]models.Fee}
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id}/fees [get]
func (c *StudentController) GetStudentFees(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}

	fees, err := c.studentService.GetStudentFees(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, fees)
}
