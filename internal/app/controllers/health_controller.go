package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolfm/internal/app/services"
	"github.com/yigit/schoolfm/internal/middleware"
)

// HealthController reports service health
type HealthController struct {
	healthService services.HealthService
}

// NewHealthController creates a new HealthController
func NewHealthController(healthService services.HealthService) *HealthController {
	return &HealthController{healthService: healthService}
}

// Health pings the database
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} dto.ErrorResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if err := c.healthService.Check(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
