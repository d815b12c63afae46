package render

import (
	"fmt"

	"github.com/talgya/delta-tetrahedron/internal/growth"
)

// ChartConfig describes the growth projection plot for an external plotter.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis"`
	YAxis      string        `json:"yAxis"`
	Series     []ChartSeries `json:"series"`
	RefLines   []RefLine     `json:"refLines,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries is one plotted line.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint is an (x, y) pair.
type ChartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RefLine is a horizontal reference line.
type RefLine struct {
	Y     float64 `json:"y"`
	Style string  `json:"style"`
	Color string  `json:"color"`
}

// Chart colors match the dashboard.
const (
	CurveColor = "cyan"
	AxisColor  = "gray"
	PulseColor = "lime"
)

// NewChart builds the growth projection chart for m. Points keep full
// precision; the plotter decides tick formatting.
func NewChart(m growth.DerivedMetrics) *ChartConfig {
	points := make([]ChartPoint, 0, len(m.Curve))
	for _, p := range m.Curve {
		points = append(points, ChartPoint{X: p.T, Y: p.Growth})
	}

	return &ChartConfig{
		ChartType: "line",
		Title:     "Growth Projection",
		XAxis:     fmt.Sprintf("Time (%s)", m.TimelineUnit),
		YAxis:     "Growth",
		Series: []ChartSeries{{
			Name:  "Simulated Growth",
			Data:  points,
			Color: CurveColor,
		}},
		RefLines:   []RefLine{{Y: 0, Style: "dashed", Color: AxisColor}},
		ShowLegend: true,
		ShowGrid:   true,
	}
}
