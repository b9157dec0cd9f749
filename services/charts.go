package services

import (
	"fmt"
	"strconv"

	"airbnb-dashboard/models"
)

// Panel names of the decomposition chart, top to bottom.
var decompositionPanels = []string{"Observed", "Trend", "Seasonal", "Residuals"}

// ChartAssembler wraps aggregation output into chart descriptions.
type ChartAssembler struct {
	City string
	Year int
}

// NewChartAssembler creates an assembler that labels charts with city and year.
func NewChartAssembler(city string, year int) *ChartAssembler {
	return &ChartAssembler{City: city, Year: year}
}

// Decomposition draws the four components as stacked panels over a shared date axis.
func (a *ChartAssembler) Decomposition(d *models.Decomposition) models.ChartDescription {
	dates := make([]string, len(d.Dates))
	for i, t := range d.Dates {
		dates[i] = t.Format(models.DateLayout)
	}

	components := [][]float64{d.Observed, d.Trend, d.Seasonal, d.Residual}
	series := make([]models.ChartSeries, len(components))
	for i, ys := range components {
		series[i] = models.ChartSeries{
			Name:  decompositionPanels[i],
			X:     dates,
			Y:     ys,
			Panel: i,
		}
	}

	return models.ChartDescription{
		Kind:   models.ChartMultiPanel,
		Series: series,
		Layout: models.ChartLayout{
			Title:       fmt.Sprintf("Seasonality Decomposition of Price in %s", a.City),
			XAxisType:   models.AxisDate,
			Height:      920,
			PanelTitles: append([]string(nil), decompositionPanels...),
		},
	}
}

// MonthlyCounts draws one bar per month in ranking order.
func (a *ChartAssembler) MonthlyCounts(counts []models.MonthlyBookingCount) models.ChartDescription {
	x := make([]string, len(counts))
	y := make([]float64, len(counts))
	for i, c := range counts {
		x[i] = strconv.Itoa(c.Month)
		y[i] = float64(c.Count)
	}

	return models.ChartDescription{
		Kind:   models.ChartBar,
		Series: []models.ChartSeries{{Name: "Counts", X: x, Y: y}},
		Layout: models.ChartLayout{
			Title:      fmt.Sprintf("Booked Homestay Count in %s in %d", a.City, a.Year),
			XAxisTitle: "Month",
			YAxisTitle: "Counts",
			XAxisType:  models.AxisCategory,
		},
	}
}

// WeekdayPrices draws one line per month across the weekdays.
func (a *ChartAssembler) WeekdayPrices(table models.WeekdayPriceTable) models.ChartDescription {
	series := make([]models.ChartSeries, 0, len(table))
	for _, month := range table {
		x := make([]string, len(month.Weekdays))
		y := make([]float64, len(month.Weekdays))
		for i, wp := range month.Weekdays {
			x[i] = wp.Weekday.String()
			y[i] = wp.Price
		}
		series = append(series, models.ChartSeries{
			Name: strconv.Itoa(month.Month),
			X:    x,
			Y:    y,
		})
	}

	return models.ChartDescription{
		Kind:   models.ChartLine,
		Series: series,
		Layout: models.ChartLayout{
			Title:       "Price by Weekday and Month",
			XAxisTitle:  "Weekday",
			YAxisTitle:  "Price",
			XAxisType:   models.AxisCategory,
			LegendTitle: "Month",
			ShowLegend:  true,
		},
	}
}
