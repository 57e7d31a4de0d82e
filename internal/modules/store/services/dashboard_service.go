package services

import (
	"github.com/dukkaniai/dukkani-ai-be/internal/core/analytics"
)

// Demo dataset backing the overview screen. Charts are shaped here; rendering
// is the dashboard's job.
var monthlySales = []analytics.Point{
	{Label: "Jan", Value: 4000},
	{Label: "Feb", Value: 3000},
	{Label: "Mar", Value: 5000},
	{Label: "Apr", Value: 7580},
	{Label: "May", Value: 6890},
	{Label: "Jun", Value: 9390},
	{Label: "Jul", Value: 12490},
}

var weeklyVisitors = []analytics.Point{
	{Label: "Mon", Value: 120},
	{Label: "Tue", Value: 180},
	{Label: "Wed", Value: 150},
	{Label: "Thu", Value: 220},
	{Label: "Fri", Value: 300},
	{Label: "Sat", Value: 450},
	{Label: "Sun", Value: 400},
}

// DashboardOverview bundles everything the overview screen shows.
type DashboardOverview struct {
	Stats    []analytics.StatCard `json:"stats"`
	Sales    analytics.ChartData  `json:"sales"`
	Visitors analytics.ChartData  `json:"visitors"`
}

type DashboardService struct{}

func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// Overview returns the stat cards and chart series for the store overview.
func (s *DashboardService) Overview() *DashboardOverview {
	return &DashboardOverview{
		Stats: []analytics.StatCard{
			analytics.NewStatCard("Total Sales", analytics.FormatMAD(124500), 12.5, "vs last month", "dollar"),
			analytics.NewStatCard("Total Orders", "1,240", 8.2, "vs last month", "bag"),
			analytics.NewStatCard("Active Visitors", "342", -2.4, "vs last month", "users"),
			analytics.NewStatCard("Conversion Rate", "3.2%", 5.1, "vs last month", "trend"),
		},
		Sales:    analytics.ToAreaChartData("sales", monthlySales),
		Visitors: analytics.ToBarChartData("visitors", weeklyVisitors),
	}
}
