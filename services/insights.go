package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"airbnb-dashboard/models"
)

// Summary computes headline figures for a terminal report. It runs the
// same pipeline stages as Figures and Map.
func (d *Dashboard) Summary(ctx context.Context) (*models.Summary, error) {
	raw, err := d.source.Calendar(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: calendar: %w", err)
	}
	rows, err := d.cleaner.Clean(raw)
	if err != nil {
		return nil, fmt.Errorf("dashboard: clean calendar: %w", err)
	}
	set, err := d.Map(ctx)
	if err != nil {
		return nil, err
	}

	report := &models.Summary{
		City:          d.assembler.City,
		CalendarRows:  len(raw),
		CleanedRows:   len(rows),
		MonthlyCounts: MonthlyBookingCounts(rows),
		Listings:      len(set.Markers),
		Skipped:       set.Skipped,
		ByColor:       make(map[models.MarkerColor]int),
	}
	for _, m := range set.Markers {
		report.ByColor[m.Color]++
	}

	if len(rows) == 0 {
		return report, nil
	}

	prices := make([]float64, len(rows))
	for i, r := range rows {
		prices[i] = r.Price.InexactFloat64()
	}
	report.AveragePrice = round2(stat.Mean(prices, nil))

	daily := DailyMeanPrice(rows)
	report.Days = len(daily)
	report.FirstDate = daily[0].Date
	report.LastDate = daily[len(daily)-1].Date
	for i := range daily {
		p := &daily[i]
		if report.CheapestDay == nil || p.Price < report.CheapestDay.Price {
			report.CheapestDay = p
		}
		if report.PriciestDay == nil || p.Price > report.PriciestDay.Price {
			report.PriciestDay = p
		}
	}

	return report, nil
}

// PrintSummary writes the report as a formatted terminal block.
func PrintSummary(w io.Writer, r *models.Summary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  📊 %s RENTAL DASHBOARD SUMMARY\033[0m\n", strings.ToUpper(r.City))
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	fmt.Fprintf(w, "\033[1;33m  Calendar\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Rows loaded        : \033[1m%d\033[0m\n", r.CalendarRows)
	fmt.Fprintf(w, "  Priced nights      : \033[1m%d\033[0m\n", r.CleanedRows)
	if r.Days > 0 {
		fmt.Fprintf(w, "  Date range         : %s → %s (%d days)\n",
			r.FirstDate.Format(models.DateLayout), r.LastDate.Format(models.DateLayout), r.Days)
		fmt.Fprintf(w, "  Average price      : \033[1;32m$%.2f\033[0m\n", r.AveragePrice)
	}
	if r.CheapestDay != nil && r.PriciestDay != nil {
		fmt.Fprintf(w, "  Cheapest day       : %s ($%.2f)\n",
			r.CheapestDay.Date.Format(models.DateLayout), r.CheapestDay.Price)
		fmt.Fprintf(w, "  Priciest day       : %s ($%.2f)\n",
			r.PriciestDay.Date.Format(models.DateLayout), r.PriciestDay.Price)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Booked Nights by Month\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.MonthlyCounts) == 0 {
		fmt.Fprintf(w, "  No priced nights\n")
	} else {
		top := r.MonthlyCounts[0].Count
		for _, mc := range r.MonthlyCounts {
			bar := strings.Repeat("█", barWidth(mc.Count, top, 30))
			fmt.Fprintf(w, "  %-10s %s (%d)\n", monthName(mc.Month), bar, mc.Count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Listings\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Mapped             : \033[1m%d\033[0m (skipped %d)\n", r.Listings, r.Skipped)
	fmt.Fprintf(w, "  Entire home/apt    : %d\n", r.ByColor[models.ColorRed])
	fmt.Fprintf(w, "  Private room       : %d\n", r.ByColor[models.ColorGreen])
	fmt.Fprintf(w, "  Other              : %d\n", r.ByColor[models.ColorYellow])

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

func barWidth(count, top, width int) int {
	if top <= 0 {
		return 0
	}
	n := count * width / top
	if n == 0 && count > 0 {
		n = 1
	}
	return n
}

func monthName(m int) string {
	if m < 1 || m > 12 {
		return fmt.Sprintf("month %d", m)
	}
	return time.Month(m).String()
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
