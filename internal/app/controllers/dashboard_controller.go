package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushrut-patil/college-admission-system/internal/app/models/dto"
	"github.com/sushrut-patil/college-admission-system/internal/app/services"
	"github.com/sushrut-patil/college-admission-system/internal/middleware"
)

// DashboardController serves the admin landing page statistics
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetAdminDashboard returns entity counts and the fee total
func (c *DashboardController) GetAdminDashboard(ctx *gin.Context) {
	dashboard, err := c.dashboardService.GetAdminDashboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}
