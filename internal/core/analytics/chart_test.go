package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToChartData(t *testing.T) {
	points := []Point{{Label: "Jan", Value: 4000}, {Label: "Feb", Value: 3000}}

	chart := ToAreaChartData("sales", points)
	assert.Equal(t, "area", chart.Type)
	assert.Equal(t, []string{"Jan", "Feb"}, chart.Labels)
	require.Len(t, chart.Data, 1)
	assert.Equal(t, "sales", chart.Data[0].Name)
	assert.Equal(t, []float64{4000, 3000}, chart.Data[0].Values)

	assert.Equal(t, "line", ToLineChartData("x", points).Type)
	assert.Equal(t, "bar", ToBarChartData("x", points).Type)
}

func TestNewStatCardTrend(t *testing.T) {
	assert.Equal(t, "up", NewStatCard("Sales", "10", 12.5, "vs last month", "").Trend)
	assert.Equal(t, "down", NewStatCard("Visitors", "10", -2.4, "vs last month", "").Trend)
	assert.Equal(t, "neutral", NewStatCard("Flat", "10", 0, "vs last month", "").Trend)
}

func TestFormatMAD(t *testing.T) {
	assert.Equal(t, "124,500 MAD", FormatMAD(124500))
	assert.Equal(t, "1,000 MAD", FormatMAD(1000))
	assert.Equal(t, "999 MAD", FormatMAD(999))
	assert.Equal(t, "0 MAD", FormatMAD(0))
}
