package analytics

import "fmt"

// ChartData represents generic chart data format
type ChartData struct {
	Type   string        `json:"type"` // "line", "bar", "area"
	Labels []string      `json:"labels"`
	Data   []ChartSeries `json:"data"`
}

// ChartSeries represents a data series in a chart
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  string    `json:"color,omitempty"`
}

// Point is one labeled value of a series.
type Point struct {
	Label string
	Value float64
}

// StatCard represents a summary statistic card
type StatCard struct {
	Title       string  `json:"title"`
	Value       string  `json:"value"`
	Change      float64 `json:"change"`
	ChangeLabel string  `json:"change_label"`
	Trend       string  `json:"trend"` // "up", "down", "neutral"
	Icon        string  `json:"icon,omitempty"`
}

// ToLineChartData converts a point series to line chart format
func ToLineChartData(name string, points []Point) ChartData {
	return toChart("line", name, points)
}

// ToBarChartData converts a point series to bar chart format
func ToBarChartData(name string, points []Point) ChartData {
	return toChart("bar", name, points)
}

// ToAreaChartData converts a point series to area chart format
func ToAreaChartData(name string, points []Point) ChartData {
	return toChart("area", name, points)
}

func toChart(chartType, name string, points []Point) ChartData {
	labels := make([]string, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Label
		values[i] = p.Value
	}

	return ChartData{
		Type:   chartType,
		Labels: labels,
		Data: []ChartSeries{
			{Name: name, Values: values},
		},
	}
}

// NewStatCard builds a stat card with the trend derived from change sign.
func NewStatCard(title, value string, change float64, changeLabel, icon string) StatCard {
	trend := "neutral"
	if change > 0 {
		trend = "up"
	} else if change < 0 {
		trend = "down"
	}

	return StatCard{
		Title:       title,
		Value:       value,
		Change:      change,
		ChangeLabel: changeLabel,
		Trend:       trend,
		Icon:        icon,
	}
}

// FormatMAD renders an amount in Moroccan dirham for stat cards.
func FormatMAD(amount float64) string {
	if amount >= 1000 {
		// Thousands separator, no decimals (dashboard style)
		whole := int64(amount)
		return fmt.Sprintf("%s MAD", groupThousands(whole))
	}
	return fmt.Sprintf("%.0f MAD", amount)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
