package models

// PricingPlan is a static subscription plan. Prices are in MAD.
type PricingPlan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Period      string   `json:"period"` // "monthly" or "yearly"
	Features    []string `json:"features"`
	Recommended bool     `json:"recommended,omitempty"`
}
