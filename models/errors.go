package models

import "fmt"

// DataLoadError reports a missing, unreadable or malformed input table.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load %q: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// PriceParseError reports a calendar price that is not a non-negative number.
type PriceParseError struct {
	Row   int
	Value string
	Err   error
}

func (e *PriceParseError) Error() string {
	return fmt.Sprintf("row %d: parse price %q: %v", e.Row, e.Value, e.Err)
}

func (e *PriceParseError) Unwrap() error { return e.Err }

// DateParseError reports a calendar date in no accepted layout.
type DateParseError struct {
	Row   int
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("row %d: parse date %q", e.Row, e.Value)
}

// DecompositionError reports a series too short for the seasonal period.
type DecompositionError struct {
	Points int
	Period int
}

func (e *DecompositionError) Error() string {
	if e.Period < 2 {
		return fmt.Sprintf("decompose: period must be at least 2, got %d", e.Period)
	}
	return fmt.Sprintf("decompose: %d observations, need at least %d for period %d",
		e.Points, 2*e.Period, e.Period)
}

// ListingRowError reports a listing row that cannot become a marker.
type ListingRowError struct {
	Row    int
	Field  string
	Value  string
	Reason string
}

func (e *ListingRowError) Error() string {
	return fmt.Sprintf("listing row %d: %s %q: %s", e.Row, e.Field, e.Value, e.Reason)
}
