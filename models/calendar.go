package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalendarRow holds one unprocessed row of the calendar file.
// Empty strings mark missing cells; price is empty for unavailable nights.
type CalendarRow struct {
	ListingID string
	Date      string
	Available string
	Price     string
}

// CleanedCalendarRow is a calendar row that survived cleaning.
type CleanedCalendarRow struct {
	ListingID string
	Date      time.Time
	Available bool
	Price     decimal.Decimal
}

// Raw formats the row back into the file representation.
func (r CleanedCalendarRow) Raw() CalendarRow {
	available := "f"
	if r.Available {
		available = "t"
	}
	return CalendarRow{
		ListingID: r.ListingID,
		Date:      r.Date.Format(DateLayout),
		Available: available,
		Price:     "$" + r.Price.StringFixed(2),
	}
}

// DateLayout is the canonical calendar date format.
const DateLayout = "2006-01-02"

// DailyPrice is the mean nightly price on one date.
type DailyPrice struct {
	Date  time.Time
	Price float64
}

// DailyPriceSeries is ordered by ascending date with no duplicates.
type DailyPriceSeries []DailyPrice

// Values returns the prices in series order.
func (s DailyPriceSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Price
	}
	return out
}

// Dates returns the dates in series order.
func (s DailyPriceSeries) Dates() []time.Time {
	out := make([]time.Time, len(s))
	for i, p := range s {
		out[i] = p.Date
	}
	return out
}

// Decomposition holds four sequences aligned to the input dates.
// Trend and Residual contain NaN where the moving average is undefined.
type Decomposition struct {
	Dates    []time.Time
	Observed []float64
	Trend    []float64
	Seasonal []float64
	Residual []float64
	Period   int
}

// MonthlyBookingCount is the number of priced nights in a month (1-12).
type MonthlyBookingCount struct {
	Month int
	Count int
}

// WeekdayPrice is the mean price on one weekday.
type WeekdayPrice struct {
	Weekday time.Weekday
	Price   float64
}

// MonthWeekdayPrices lists a month's weekday means, Monday first.
type MonthWeekdayPrices struct {
	Month    int
	Weekdays []WeekdayPrice
}

// WeekdayPriceTable lists months in ascending order.
type WeekdayPriceTable []MonthWeekdayPrices

// WeekdayOrder is the fixed display order of weekdays.
var WeekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}
