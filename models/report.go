package models

import "time"

// Summary holds headline figures over one pipeline run.
type Summary struct {
	City          string
	CalendarRows  int
	CleanedRows   int
	Days          int
	FirstDate     time.Time
	LastDate      time.Time
	AveragePrice  float64
	CheapestDay   *DailyPrice
	PriciestDay   *DailyPrice
	MonthlyCounts []MonthlyBookingCount
	Listings      int
	Skipped       int
	ByColor       map[MarkerColor]int
}
