package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolfm/internal/app/models/dto"
	"github.com/yigit/schoolfm/internal/app/services"
	"github.com/yigit/schoolfm/internal/middleware"
	"github.com/yigit/schoolfm/internal/pkg/apperrors"
)

// SettingsController handles the settings document
type SettingsController struct {
	settingsService services.SettingsService
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService services.SettingsService) *SettingsController {
	return &SettingsController{settingsService: settingsService}
}

// GetSettings returns the whole settings document
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} object "The stored document, verbatim"
// @Failure 500 {object} dto.ErrorResponse "Settings could not be read"
// @Router /settings [get]
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	doc, err := c.settingsService.GetSettings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", doc)
}

// ReplaceSettings overwrites the settings document
// @Summary Replace settings
// @Description The body replaces the stored document entirely; nothing is merged.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body object true "Settings document"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Body is not JSON"
// @Failure 500 {object} dto.ErrorResponse "Settings could not be written"
// @Router /settings [put]
func (c *SettingsController) ReplaceSettings(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("failed to read request body"))
		return
	}

	if err := c.settingsService.ReplaceSettings(ctx, body); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Settings updated successfully."})
}
