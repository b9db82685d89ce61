package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolfm/internal/app/models/dto"
	"github.com/yigit/schoolfm/internal/app/services"
	"github.com/yigit/schoolfm/internal/middleware"
)

// BillingController handles fee structure and fee endpoints
type BillingController struct {
	structureService services.FeeStructureService
	feeService       services.FeeService
}

// NewBillingController creates a new BillingController
func NewBillingController(structureService services.FeeStructureService, feeService services.FeeService) *BillingController {
	return &BillingController{
		structureService: structureService,
		feeService:       feeService,
	}
}

// GetAllFeeStructures lists fee structures with their class names
// @Summary List fee structures
// @Description class_id and class_name are null for structures that apply to every class.
// @Tags fee-structures
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.FeeStructure}
// @Failure 500 {object} dto.ErrorResponse
// @Router /fee-structures [get]
func (c *BillingController) GetAllFeeStructures(ctx *gin.Context) {
	structures, err := c.structureService.GetAllFeeStructures(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, structures)
}

// CreateFeeStructure adds a fee structure
// @Summary Create a fee structure
// @Tags fee-structures
// @Accept json
// @Produce json
// @Param request body dto.CreateFeeStructureRequest true "Fee structure"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown class"
// @Failure 500 {object} dto.ErrorResponse
// @Router /fee-structures [post]
func (c *BillingController) CreateFeeStructure(ctx *gin.Context) {
	var req dto.CreateFeeStructureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	id, err := c.structureService.CreateFeeStructure(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, id)
}

// DeleteFeeStructure removes a fee structure
// @Summary Delete a fee structure
// @Tags fee-structures
// @Produce json
// @Param id path int true "Fee structure ID"
// @Success 200 {object} dto.ChangesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid fee structure ID"
// @Failure 500 {object} dto.ErrorResponse
// @Router /fee-structures/{id} [delete]
func (c *BillingController) DeleteFeeStructure(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "fee structure")
	if !ok {
		return
	}

	changes, err := c.structureService.DeleteFeeStructure(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondChanges(ctx, changes)
}

// CreateFee records a fee owed by a student
// @Summary Create a fee
// @Tags fees
// @Accept json
// @Produce json
// @Param request body dto.FeeRequest true "Fee"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown student"
// @Failure 500 {object} dto.ErrorResponse
// @Router /fees [post]
func (c *BillingController) CreateFee(ctx *gin.Context) {
	var req dto.FeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	id, err := c.feeService.CreateFee(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, id)
}

// UpdateFee replaces a fee's attributes
// @Summary Update a fee
// @Tags fees
// @Accept json
// @Produce json
// @Param id path int true "Fee ID"
// @Param request body dto.FeeRequest true "Fee"
// @Success 200 {object} dto.ChangesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fees/{id} [put]
func (c *BillingController) UpdateFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "fee")
	if !ok {
		return
	}

	var req dto.FeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	changes, err := c.feeService.UpdateFee(ctx, id, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondChanges(ctx, changes)
}

// DeleteFee removes a fee
// @Summary Delete a fee
// @Tags fees
// @Produce json
// @Param id path int true "Fee ID"
// @Success 200 {object} dto.ChangesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid fee ID"
// @Failure 500 {object} dto.ErrorResponse
// @Router /fees/{id} [delete]
func (c *BillingController) DeleteFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "fee")
	if !ok {
		return
	}

	changes, err := c.feeService.DeleteFee(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondChanges(ctx, changes)
}
