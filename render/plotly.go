package render

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"

	"airbnb-dashboard/models"
)

// Figure is a plotly.js figure: traces plus layout.
type Figure struct {
	Data   []Trace        `json:"data"`
	Layout map[string]any `json:"layout"`
}

// Trace is one plotly.js trace. Y uses nil for undefined points so they
// encode as null and plotly leaves a gap.
type Trace struct {
	Type  string     `json:"type"`
	Mode  string     `json:"mode,omitempty"`
	Name  string     `json:"name,omitempty"`
	X     []string   `json:"x"`
	Y     []*float64 `json:"y"`
	XAxis string     `json:"xaxis,omitempty"`
	YAxis string     `json:"yaxis,omitempty"`
}

// PlotlyFigures encodes the charts as a JSON array of plotly.js figures.
func PlotlyFigures(charts []models.ChartDescription) ([]byte, error) {
	figures := make([]Figure, len(charts))
	for i, c := range charts {
		figures[i] = ToFigure(c)
	}
	b, err := json.Marshal(figures)
	if err != nil {
		return nil, fmt.Errorf("render: encode figures: %w", err)
	}
	return b, nil
}

// ToFigure maps a chart description onto the plotly.js object model.
func ToFigure(c models.ChartDescription) Figure {
	layout := map[string]any{
		"title": map[string]any{"text": c.Layout.Title, "x": 0.5},
	}
	if c.Layout.Height > 0 {
		layout["height"] = c.Layout.Height
	}
	layout["showlegend"] = c.Layout.ShowLegend
	if c.Layout.LegendTitle != "" {
		layout["legend"] = map[string]any{"title": map[string]any{"text": c.Layout.LegendTitle}}
	}

	traces := make([]Trace, len(c.Series))
	for i, s := range c.Series {
		traces[i] = Trace{
			Type: "scatter",
			Mode: "lines",
			Name: s.Name,
			X:    s.X,
			Y:    nullable(s.Y),
		}
		if c.Kind == models.ChartBar {
			traces[i].Type = "bar"
			traces[i].Mode = ""
		}
	}

	if c.Kind != models.ChartMultiPanel {
		layout["xaxis"] = axis(c.Layout.XAxisTitle, c.Layout.XAxisType, "")
		layout["yaxis"] = axis(c.Layout.YAxisTitle, "", "")
		return Figure{Data: traces, Layout: layout}
	}

	panels := c.Panels()
	layout["margin"] = map[string]any{"t": 60}
	layout["grid"] = map[string]any{
		"rows":     panels,
		"columns":  1,
		"pattern":  "independent",
		"roworder": "top to bottom",
		"ygap":     0.25,
	}
	for p := 0; p < panels; p++ {
		title := ""
		if p < len(c.Layout.PanelTitles) {
			title = c.Layout.PanelTitles[p]
		}
		matches := ""
		if p > 0 {
			matches = "x"
		}
		layout[axisKey("xaxis", p)] = axis("", c.Layout.XAxisType, matches)
		layout[axisKey("yaxis", p)] = axis(title, "", "")
	}
	for i := range traces {
		traces[i].XAxis = axisKey("x", c.Series[i].Panel)
		traces[i].YAxis = axisKey("y", c.Series[i].Panel)
	}
	return Figure{Data: traces, Layout: layout}
}

func axis(title string, typ models.AxisType, matches string) map[string]any {
	a := map[string]any{}
	if title != "" {
		a["title"] = map[string]any{"text": title}
	}
	if typ != "" {
		a["type"] = string(typ)
	}
	if matches != "" {
		a["matches"] = matches
	}
	return a
}

// axisKey names the axis of panel p: xaxis, xaxis2... in the layout and
// x, x2... on a trace.
func axisKey(prefix string, p int) string {
	if p == 0 {
		return prefix
	}
	return fmt.Sprintf("%s%d", prefix, p+1)
}

func nullable(ys []float64) []*float64 {
	out := make([]*float64, len(ys))
	for i := range ys {
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		v := ys[i]
		out[i] = &v
	}
	return out
}
