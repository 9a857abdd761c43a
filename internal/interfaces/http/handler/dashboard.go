package handler

import (
	"github.com/gin-gonic/gin"

	appbilling "github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/application/billing"
)

// DashboardHandler serves the admin dashboard statistics
type DashboardHandler struct {
	BaseHandler
	dashboardService *appbilling.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *appbilling.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the operational counters for the admin landing page
// GET /api/admin/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.AdminStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}
