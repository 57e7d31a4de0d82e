package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlansMonthly(t *testing.T) {
	svc := NewPricingService()

	plans := svc.Plans("monthly")
	require.Len(t, plans, 3)

	assert.Equal(t, 199.0, plans[0].Price)
	assert.Equal(t, 399.0, plans[1].Price)
	assert.Equal(t, 999.0, plans[2].Price)
	assert.True(t, plans[1].Recommended)
	for _, plan := range plans {
		assert.Equal(t, "monthly", plan.Period)
		assert.NotEmpty(t, plan.Features)
	}
}

func TestPlansYearlyChargesTenMonths(t *testing.T) {
	svc := NewPricingService()

	plans := svc.Plans("yearly")
	assert.Equal(t, 1990.0, plans[0].Price)
	assert.Equal(t, 3990.0, plans[1].Price)
	assert.Equal(t, 9990.0, plans[2].Price)
	assert.Equal(t, "yearly", plans[0].Period)
}

func TestPlansUnknownPeriodFallsBackToMonthly(t *testing.T) {
	svc := NewPricingService()

	plans := svc.Plans("weekly")
	assert.Equal(t, 199.0, plans[0].Price)
	assert.Equal(t, "monthly", plans[0].Period)

	// The base catalog must not be mutated by a yearly request.
	svc.Plans("yearly")
	again := svc.Plans("monthly")
	assert.Equal(t, 199.0, again[0].Price)
}
