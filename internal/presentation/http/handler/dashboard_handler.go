package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/invinci009/rmw/internal/application/service"
	"github.com/invinci009/rmw/internal/presentation/http/dto/response"
)

// DashboardHandler handles admin dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the workshop overview counters. Admin only.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
