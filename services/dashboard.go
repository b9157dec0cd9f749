package services

import (
	"context"
	"fmt"

	"airbnb-dashboard/models"
	"airbnb-dashboard/storage"
	"airbnb-dashboard/utils"
)

// Dashboard runs the full pipeline from a Source on every call.
// It holds no per-request state and is safe for concurrent use.
type Dashboard struct {
	source     storage.Source
	cleaner    *Cleaner
	decomposer Decomposer
	assembler  *ChartAssembler
	mapper     *ListingMapper
	logger     *utils.Logger
}

// NewDashboard wires the pipeline stages together.
func NewDashboard(source storage.Source, decomposer Decomposer, assembler *ChartAssembler,
	mapper *ListingMapper, logger *utils.Logger) *Dashboard {
	return &Dashboard{
		source:     source,
		cleaner:    NewCleaner(logger),
		decomposer: decomposer,
		assembler:  assembler,
		mapper:     mapper,
		logger:     logger,
	}
}

// Figures returns the decomposition, monthly count and weekday price charts,
// in that order, with ids figure-0 to figure-2.
func (d *Dashboard) Figures(ctx context.Context) ([]models.ChartDescription, error) {
	rows, err := d.CleanedCalendar(ctx)
	if err != nil {
		return nil, err
	}

	daily := DailyMeanPrice(rows)
	decomposition, err := d.decomposer.Decompose(daily)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	figures := []models.ChartDescription{
		d.assembler.Decomposition(decomposition),
		d.assembler.MonthlyCounts(MonthlyBookingCounts(rows)),
		d.assembler.WeekdayPrices(WeekdayPriceByMonth(rows)),
	}
	for i := range figures {
		figures[i].ID = FigureID(i)
	}

	d.logger.Debug("[dashboard] Built %d figures from %d calendar rows (%d days)",
		len(figures), len(rows), len(daily))
	return figures, nil
}

// CleanedCalendar loads and cleans the calendar.
func (d *Dashboard) CleanedCalendar(ctx context.Context) ([]models.CleanedCalendarRow, error) {
	raw, err := d.source.Calendar(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: calendar: %w", err)
	}

	rows, err := d.cleaner.Clean(raw)
	if err != nil {
		return nil, fmt.Errorf("dashboard: clean calendar: %w", err)
	}
	return rows, nil
}

// Map returns one marker per usable listing.
func (d *Dashboard) Map(ctx context.Context) (*models.MarkerSet, error) {
	rows, err := d.source.Listings(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listings: %w", err)
	}

	set, err := d.mapper.Map(rows)
	if err != nil {
		return nil, fmt.Errorf("dashboard: map listings: %w", err)
	}
	return set, nil
}

// FigureID is the HTML element id of the i-th figure.
func FigureID(i int) string {
	return fmt.Sprintf("figure-%d", i)
}
