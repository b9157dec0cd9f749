package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"airbnb-dashboard/models"
	"airbnb-dashboard/utils"
)

// currencySymbols may prefix a calendar price.
var currencySymbols = []string{"$", "€", "£"}

// dateLayouts are tried in order when parsing calendar dates.
var dateLayouts = []string{
	models.DateLayout,
	"2006/01/02",
	"01/02/2006",
	time.RFC3339,
}

var errNegativePrice = errors.New("negative price")

// Cleaner turns raw calendar rows into typed, validated rows.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean drops incomplete rows, then parses price and date of the rest.
// The first unparsable price or date aborts with a PriceParseError or
// DateParseError. Output keeps input order.
func (c *Cleaner) Clean(raw []models.CalendarRow) ([]models.CleanedCalendarRow, error) {
	result := make([]models.CleanedCalendarRow, 0, len(raw))
	dropped := 0

	for i, r := range raw {
		available, ok := parseAvailable(r.Available)
		if !ok || isBlank(r.ListingID) || isBlank(r.Date) || isBlank(r.Price) {
			dropped++
			continue
		}

		price, err := parsePrice(r.Price)
		if err != nil {
			return nil, &models.PriceParseError{Row: i, Value: r.Price, Err: err}
		}

		date, err := parseDate(r.Date)
		if err != nil {
			return nil, &models.DateParseError{Row: i, Value: r.Date}
		}

		result = append(result, models.CleanedCalendarRow{
			ListingID: strings.TrimSpace(r.ListingID),
			Date:      date,
			Available: available,
			Price:     price,
		})
	}

	c.logger.Info("[cleaner] Cleaned %d → %d calendar rows (dropped %d incomplete)",
		len(raw), len(result), dropped)
	return result, nil
}

// parsePrice strips a leading currency symbol and thousands separators.
// Examples:
//
//	"$85.00"    → 85
//	"$1,200.50" → 1200.5
//	"99"        → 99
func parsePrice(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	for _, sym := range currencySymbols {
		if strings.HasPrefix(s, sym) {
			s = strings.TrimPrefix(s, sym)
			break
		}
	}
	s = strings.ReplaceAll(s, ",", "")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errNegativePrice
	}
	return d, nil
}

func parseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseAvailable reports false for both a blank and an unrecognised flag.
func parseAvailable(raw string) (bool, bool) {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, false
	}
	return v, true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
