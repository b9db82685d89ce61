package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolfm/internal/app/models/dto"
	"github.com/yigit/schoolfm/internal/app/services"
	"github.com/yigit/schoolfm/internal/middleware"
)

// StaffController handles staff endpoints
type StaffController struct {
	staffService services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService services.StaffService) *StaffController {
	return &StaffController{staffService: staffService}
}

// GetActiveStaff lists active staff
// @Summary List active staff
// @Tags staff
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.Staff}
// @Failure 500 {object} dto.ErrorResponse
// @Router /staff [get]
func (c *StaffController) GetActiveStaff(ctx *gin.Context) {
	staff, err := c.staffService.GetActiveStaff(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, staff)
}

// GetArchivedStaff lists staff that have left
// @Summary List archived staff
// @Tags staff
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.Staff}
// @Failure 500 {object} dto.ErrorResponse
// @Router /staff/archived [get]
func (c *StaffController) GetArchivedStaff(ctx *gin.Context) {
	staff, err := c.staffService.GetArchivedStaff(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, staff)
}

// CreateStaff adds a staff member
// @Summary Create a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param request body dto.StaffRequest true "Staff member"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown role"
// @Failure 500 {object} dto.ErrorResponse
// @Router /staff [post]
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var req dto.StaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	id, err := c.staffService.CreateStaff(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, id)
}

// UpdateStaff replaces a staff member's attributes
// @Summary Update a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param id path int true "Staff ID"
// @Param request body dto.StaffRequest true "Staff member"
// @Success 200 {object} dto.ChangesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /staff/{id} [put]
func (c *StaffController) UpdateStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "staff")
	if !ok {
		return
	}

	var req dto.StaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	changes, err := c.staffService.UpdateStaff(ctx, id, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondChanges(ctx, changes)
}

// ArchiveStaff marks a staff member as Left
// @Summary Archive a staff member
// @Tags staff
// @Produce json
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.ChangesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid staff ID"
// @Failure 500 {object} dto.ErrorResponse
// @Router /staff/{id}/archive [put]
func (c *StaffController) ArchiveStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "staff")
	if !ok {
		return
	}

	changes, err := c.staffService.ArchiveStaff(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondChanges(ctx, changes)
}
