package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolfm/internal/app/models/dto"
	"github.com/yigit/schoolfm/internal/app/services"
	"github.com/yigit/schoolfm/internal/middleware"
)

// StaffRoleController handles staff role endpoints
type StaffRoleController struct {
	roleService services.StaffRoleService
}

// NewStaffRoleController creates a new StaffRoleController
func NewStaffRoleController(roleService services.StaffRoleService) *StaffRoleController {
	return &StaffRoleController{roleService: roleService}
}

// GetAllStaffRoles lists every staff role
// @Summary List staff roles
// @Tags staff-roles
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.StaffRole}
// @Failure 500 {object} dto.ErrorResponse
// @Router /staff-roles [get]
func (c *StaffRoleController) GetAllStaffRoles(ctx *gin.Context) {
	roles, err := c.roleService.GetAllStaffRoles(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, roles)
}

// CreateStaffRole adds a staff role
// @Summary Create a staff role
// @Tags staff-roles
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRoleRequest true "Role"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Role already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /staff-roles [post]
func (c *StaffRoleController) CreateStaffRole(ctx *gin.Context) {
	var req dto.CreateStaffRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	id, err := c.roleService.CreateStaffRole(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, id)
}

// DeleteStaffRole removes a staff role
// @Summary Delete a staff role
// @Tags staff-roles
// @Produce json
// @Param id path int true "Role ID"
// @Success 200 {object} dto.ChangesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid role ID"
// @Failure 409 {object} dto.ErrorResponse "Role is assigned to staff"
// @Failure 500 {object} dto.ErrorResponse
// @Router /staff-roles/{id} [delete]
func (c *StaffRoleController) DeleteStaffRole(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "staff role")
	if !ok {
		return
	}

	changes, err := c.roleService.DeleteStaffRole(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondChanges(ctx, changes)
}
