package models

// ChartKind tells the renderer how to draw a chart.
type ChartKind string

const (
	ChartLine       ChartKind = "line"
	ChartBar        ChartKind = "bar"
	ChartMultiPanel ChartKind = "multi-panel"
)

// AxisType hints how x values should be interpreted.
type AxisType string

const (
	AxisDate     AxisType = "date"
	AxisCategory AxisType = "category"
)

// ChartSeries is one named sequence of (x, y) points.
// Y may contain NaN for undefined points. Panel is the 0-based
// row of a multi-panel chart and zero otherwise.
type ChartSeries struct {
	Name  string
	X     []string
	Y     []float64
	Panel int
}

// ChartLayout is the title, axis and legend metadata of a chart.
type ChartLayout struct {
	Title       string
	XAxisTitle  string
	YAxisTitle  string
	XAxisType   AxisType
	LegendTitle string
	ShowLegend  bool
	Height      int
	PanelTitles []string
}

// ChartDescription is the renderer-agnostic contract between the
// pipeline and the presentation layer.
type ChartDescription struct {
	ID     string
	Kind   ChartKind
	Series []ChartSeries
	Layout ChartLayout
}

// Panels returns the number of panels, 1 for single-panel charts.
func (c ChartDescription) Panels() int {
	if c.Kind != ChartMultiPanel {
		return 1
	}
	n := len(c.Layout.PanelTitles)
	for _, s := range c.Series {
		if s.Panel+1 > n {
			n = s.Panel + 1
		}
	}
	return n
}
