package services

import (
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/models"
)

// Yearly billing charges ten months for twelve.
const yearlyMonths = 10

var basePlans = []models.PricingPlan{
	{
		ID:    "starter",
		Name:  "Starter",
		Price: 199,
		Features: []string{
			"1 Online Store",
			"AI Product Descriptions",
			"Basic Analytics",
			"WhatsApp Order Link",
			"Email Support",
		},
	},
	{
		ID:          "growth",
		Name:        "Growth",
		Price:       399,
		Recommended: true,
		Features: []string{
			"3 Online Stores",
			"AI Product Studio (Images + Copy)",
			"AI Sales Agent (Text)",
			"Advanced Analytics",
			"Ad Copy Generator",
			"Priority Support",
		},
	},
	{
		ID:    "agency",
		Name:  "Agency",
		Price: 999,
		Features: []string{
			"Unlimited Stores",
			"AI Sales Agent (Text + Voice)",
			"SEO Optimizer",
			"Custom Themes",
			"Team Accounts",
			"Dedicated Account Manager",
		},
	},
}

type PricingService struct{}

func NewPricingService() *PricingService {
	return &PricingService{}
}

// Plans returns the plan catalog for the requested billing period.
// Any period other than "yearly" is treated as monthly.
func (s *PricingService) Plans(period string) []models.PricingPlan {
	plans := make([]models.PricingPlan, len(basePlans))
	copy(plans, basePlans)

	for i := range plans {
		if period == "yearly" {
			plans[i].Price *= yearlyMonths
			plans[i].Period = "yearly"
		} else {
			plans[i].Period = "monthly"
		}
	}
	return plans
}
