package services

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"airbnb-dashboard/models"
)

// DailyMeanPrice averages the price of all rows sharing a date and returns
// one point per date, oldest first.
func DailyMeanPrice(rows []models.CleanedCalendarRow) models.DailyPriceSeries {
	byDate := make(map[time.Time][]float64)
	for _, r := range rows {
		byDate[r.Date] = append(byDate[r.Date], r.Price.InexactFloat64())
	}

	series := make(models.DailyPriceSeries, 0, len(byDate))
	for date, prices := range byDate {
		series = append(series, models.DailyPrice{Date: date, Price: stat.Mean(prices, nil)})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}

// MonthlyBookingCounts counts rows per calendar month, busiest month first.
// Months with equal counts stay in calendar order.
func MonthlyBookingCounts(rows []models.CleanedCalendarRow) []models.MonthlyBookingCount {
	var counts [13]int
	for _, r := range rows {
		counts[int(r.Date.Month())]++
	}

	out := make([]models.MonthlyBookingCount, 0, 12)
	for month := 1; month <= 12; month++ {
		if counts[month] == 0 {
			continue
		}
		out = append(out, models.MonthlyBookingCount{Month: month, Count: counts[month]})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// WeekdayPriceByMonth averages price per (month, weekday). Months are listed
// in ascending order; weekdays run Monday to Sunday.
func WeekdayPriceByMonth(rows []models.CleanedCalendarRow) models.WeekdayPriceTable {
	type bucket struct {
		month   int
		weekday time.Weekday
	}

	var seenMonth [13]bool
	prices := make(map[bucket][]float64)

	for _, r := range rows {
		month := int(r.Date.Month())
		seenMonth[month] = true
		key := bucket{month: month, weekday: r.Date.Weekday()}
		prices[key] = append(prices[key], r.Price.InexactFloat64())
	}

	table := make(models.WeekdayPriceTable, 0, 12)
	for month := 1; month <= 12; month++ {
		if !seenMonth[month] {
			continue
		}
		entry := models.MonthWeekdayPrices{Month: month}
		for _, wd := range models.WeekdayOrder {
			p, ok := prices[bucket{month: month, weekday: wd}]
			if !ok {
				continue
			}
			entry.Weekdays = append(entry.Weekdays, models.WeekdayPrice{
				Weekday: wd,
				Price:   stat.Mean(p, nil),
			})
		}
		table = append(table, entry)
	}
	return table
}
