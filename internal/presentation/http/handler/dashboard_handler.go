package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kipsang/medicore-api/internal/application/service"
	"github.com/kipsang/medicore-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles fetching the dashboard summary figures
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard summary retrieved successfully", summary)
}

// GetCharts handles fetching the dashboard chart series
func (h *DashboardHandler) GetCharts(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	topLimit, _ := strconv.Atoi(c.DefaultQuery("top", "10"))

	charts, err := h.dashboardService.GetCharts(c.Request.Context(), days, topLimit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard charts retrieved successfully", charts)
}
