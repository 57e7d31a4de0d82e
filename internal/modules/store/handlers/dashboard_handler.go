package handlers

import (
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/services"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetOverview godoc
// @Summary Store overview
// @Description Stat cards plus monthly sales and weekly visitor series
// @Tags Dashboard
// @Produce json
// @Success 200 {object} services.DashboardOverview
// @Router /dashboard/overview [get]
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	return c.JSON(h.dashboardService.Overview())
}
