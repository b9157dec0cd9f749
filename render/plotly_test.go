package render

import (
	"math"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"airbnb-dashboard/models"
)

func multiPanelChart() models.ChartDescription {
	x := []string{"2016-01-04", "2016-01-05", "2016-01-06"}
	nan := math.NaN()
	return models.ChartDescription{
		ID:   "figure-0",
		Kind: models.ChartMultiPanel,
		Series: []models.ChartSeries{
			{Name: "Observed", X: x, Y: []float64{1, 2, 3}, Panel: 0},
			{Name: "Trend", X: x, Y: []float64{nan, 2, nan}, Panel: 1},
			{Name: "Seasonal", X: x, Y: []float64{0, 0, 0}, Panel: 2},
			{Name: "Residuals", X: x, Y: []float64{nan, 0, nan}, Panel: 3},
		},
		Layout: models.ChartLayout{
			Title:       "Seasonality Decomposition of Price in Seattle",
			XAxisType:   models.AxisDate,
			Height:      920,
			PanelTitles: []string{"Observed", "Trend", "Seasonal", "Residuals"},
		},
	}
}

func TestPlotlyFiguresEncodesNaNAsNull(t *testing.T) {
	b, err := PlotlyFigures([]models.ChartDescription{multiPanelChart()})
	if err != nil {
		t.Fatalf("PlotlyFigures: %v", err)
	}

	var figures []map[string]any
	if err := json.Unmarshal(b, &figures); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	data := figures[0]["data"].([]any)
	trend := data[1].(map[string]any)["y"].([]any)
	if trend[0] != nil || trend[2] != nil {
		t.Errorf("undefined trend points should be null, got %v", trend)
	}
	if trend[1].(float64) != 2 {
		t.Errorf("trend[1]: got %v, want 2", trend[1])
	}
}

func TestToFigureMultiPanelAxes(t *testing.T) {
	fig := ToFigure(multiPanelChart())

	wantRefs := [][2]string{{"x", "y"}, {"x2", "y2"}, {"x3", "y3"}, {"x4", "y4"}}
	for i, tr := range fig.Data {
		if tr.XAxis != wantRefs[i][0] || tr.YAxis != wantRefs[i][1] {
			t.Errorf("trace %d axes: got %s/%s, want %s/%s", i, tr.XAxis, tr.YAxis, wantRefs[i][0], wantRefs[i][1])
		}
		if tr.Type != "scatter" || tr.Mode != "lines" {
			t.Errorf("trace %d: got type %q mode %q", i, tr.Type, tr.Mode)
		}
	}

	grid := fig.Layout["grid"].(map[string]any)
	if grid["rows"] != 4 {
		t.Errorf("grid rows: got %v", grid["rows"])
	}
	x4 := fig.Layout["xaxis4"].(map[string]any)
	if x4["matches"] != "x" || x4["type"] != "date" {
		t.Errorf("xaxis4: got %v", x4)
	}
	y2 := fig.Layout["yaxis2"].(map[string]any)
	if y2["title"].(map[string]any)["text"] != "Trend" {
		t.Errorf("yaxis2 title: got %v", y2["title"])
	}
	if fig.Layout["showlegend"] != false || fig.Layout["height"] != 920 {
		t.Errorf("layout: showlegend=%v height=%v", fig.Layout["showlegend"], fig.Layout["height"])
	}
}

func TestToFigureBar(t *testing.T) {
	fig := ToFigure(models.ChartDescription{
		Kind:   models.ChartBar,
		Series: []models.ChartSeries{{Name: "Counts", X: []string{"12", "1"}, Y: []float64{40, 30}}},
		Layout: models.ChartLayout{
			Title: "Booked Homestay Count in Seattle in 2016", XAxisTitle: "Month",
			YAxisTitle: "Counts", XAxisType: models.AxisCategory,
		},
	})

	if len(fig.Data) != 1 || fig.Data[0].Type != "bar" || fig.Data[0].Mode != "" {
		t.Fatalf("unexpected traces: %+v", fig.Data)
	}
	xaxis := fig.Layout["xaxis"].(map[string]any)
	if xaxis["type"] != "category" {
		t.Errorf("xaxis type: got %v", xaxis["type"])
	}
	if _, ok := fig.Layout["grid"]; ok {
		t.Error("single-panel chart should not have a grid")
	}
}

func TestPlotlyFiguresEscapesHTML(t *testing.T) {
	b, err := PlotlyFigures([]models.ChartDescription{{
		Kind:   models.ChartLine,
		Series: []models.ChartSeries{{Name: "</script>", X: []string{"Monday"}, Y: []float64{1}}},
	}})
	if err != nil {
		t.Fatalf("PlotlyFigures: %v", err)
	}
	if strings.Contains(string(b), "</script>") {
		t.Error("series names must be HTML-escaped in the JSON output")
	}
}
