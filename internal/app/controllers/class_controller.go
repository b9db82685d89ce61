package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolfm/internal/app/models/dto"
	"github.com/yigit/schoolfm/internal/app/services"
	"github.com/yigit/schoolfm/internal/middleware"
)

// ClassController handles class and section endpoints
type ClassController struct {
	classService   services.ClassService
	sectionService services.SectionService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService, sectionService services.SectionService) *ClassController {
	return &ClassController{
		classService:   classService,
		sectionService: sectionService,
	}
}

// GetAllClasses lists every class
// @Summary List classes
// @Tags classes
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.Class}
// @Failure 500 {object} dto.ErrorResponse
// @Router /classes [get]
func (c *ClassController) GetAllClasses(ctx *gin.Context) {
	classes, err := c.classService.GetAllClasses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, classes)
}

// CreateClass adds a class
// @Summary Create a class
// @Tags classes
// @Accept json
// @Produce json
// @Param request body dto.CreateClassRequest true "Class"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Class already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	id, err := c.classService.CreateClass(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, id)
}

// DeleteClass removes a class
// @Summary Delete a class
// @Description Classes that still have sections cannot be deleted. Fee structures of the class are removed with it.
// @Tags classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} dto.ChangesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid class ID"
// @Failure 409 {object} dto.ErrorResponse "Class has sections"
// @Failure 500 {object} dto.ErrorResponse
// @Router /classes/{id} [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "class")
	if !ok {
		return
	}

	changes, err := c.classService.DeleteClass(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondChanges(ctx, changes)
}

// GetSections lists sections with their class and teacher names
// @Summary List sections
// @Tags sections
// @Produce json
// @Param class_id query int false "Only sections of this class"
// @Success 200 {object} dto.ListResponse{data=[]models.Section}
// @Failure 400 {object} dto.ErrorResponse "Invalid class_id"
// @Failure 500 {object} dto.ErrorResponse
// @Router /sections [get]
func (c *ClassController) GetSections(ctx *gin.Context) {
	classID, ok := parseOptionalIDQuery(ctx, "class_id")
	if !ok {
		return
	}

	sections, err := c.sectionService.GetSections(ctx, classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, sections)
}

// CreateSection adds a section to a class
// @Summary Create a section
// @Tags sections
// @Accept json
// @Produce json
// @Param request body dto.CreateSectionRequest true "Section"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown class/teacher"
// @Failure 409 {object} dto.ErrorResponse "Section already exists in the class"
// @Failure 500 {object} dto.ErrorResponse
// @Router /sections [post]
func (c *ClassController) CreateSection(ctx *gin.Context) {
	var req dto.CreateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	id, err := c.sectionService.CreateSection(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, id)
}

// DeleteSection removes a section
// @Summary Delete a section
// @Description Students of the section are kept without a section.
// @Tags sections
// @Produce json
// @Param id path int true "Section ID"
// @Success 200 {object} dto.ChangesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid section ID"
// @Failure 500 {object} dto.ErrorResponse
// @Router /sections/{id} [delete]
func (c *ClassController) DeleteSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "section")
	if !ok {
		return
	}

	changes, err := c.sectionService.DeleteSection(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondChanges(ctx, changes)
}
