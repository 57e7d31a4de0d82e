package handlers

import (
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/services"
	"github.com/gofiber/fiber/v2"
)

type PricingHandler struct {
	pricingService *services.PricingService
}

func NewPricingHandler(pricingService *services.PricingService) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
	}
}

// ListPlans godoc
// @Summary List subscription plans
// @Description List the plan catalog for a billing period (yearly bills ten months)
// @Tags Pricing
// @Produce json
// @Param period query string false "Billing period" Enums(monthly, yearly) default(monthly)
// @Success 200 {array} models.PricingPlan
// @Router /pricing/plans [get]
func (h *PricingHandler) ListPlans(c *fiber.Ctx) error {
	return c.JSON(h.pricingService.Plans(c.Query("period", "monthly")))
}
