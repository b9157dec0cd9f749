package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"airbnb-dashboard/models"
)

// Column names of the two input files.
var (
	CalendarColumns = []string{"listing_id", "date", "available", "price"}
	ListingColumns  = []string{"latitude", "longitude", "room_type", "price"}
)

// missingValues are the cell contents treated as absent.
var missingValues = []string{"", "NA", "NaN", "<nil>"}

// textColumns keep their file text verbatim instead of being inferred.
var textColumns = map[string]series.Type{
	"id":         series.String,
	"listing_id": series.String,
	"date":       series.String,
	"available":  series.String,
	"room_type":  series.String,
	"price":      series.String,
}

// LoadTable reads the delimited file at path into a DataFrame, inferring
// column types from content. Columns listed in required must be present.
func LoadTable(path string, required ...string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, &models.DataLoadError{Path: path, Err: err}
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(missingValues),
		dataframe.WithTypes(textColumns),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, &models.DataLoadError{Path: path, Err: df.Err}
	}

	have := make(map[string]struct{}, df.Ncol())
	for _, name := range df.Names() {
		have[name] = struct{}{}
	}
	for _, name := range required {
		if _, ok := have[name]; !ok {
			return dataframe.DataFrame{}, &models.DataLoadError{
				Path: path,
				Err:  fmt.Errorf("missing column %q", name),
			}
		}
	}

	return df, nil
}

// column returns the text of every cell in a column, with missing cells as "".
// A column absent from the table yields all-empty cells.
func column(df dataframe.DataFrame, name string) []string {
	out := make([]string, df.Nrow())
	hasColumn := false
	for _, n := range df.Names() {
		if n == name {
			hasColumn = true
			break
		}
	}
	if !hasColumn {
		return out
	}

	col := df.Col(name)
	records := col.Records()
	nan := col.IsNaN()
	for i := range out {
		if nan[i] {
			continue
		}
		out[i] = records[i]
	}
	return out
}

// CSVSource reads the calendar and listings tables from CSV files.
type CSVSource struct {
	CalendarPath string
	ListingsPath string
}

// NewCSVSource creates a CSVSource over the two file paths.
func NewCSVSource(calendarPath, listingsPath string) *CSVSource {
	return &CSVSource{CalendarPath: calendarPath, ListingsPath: listingsPath}
}

// Calendar loads every calendar row in file order.
func (s *CSVSource) Calendar(ctx context.Context) ([]models.CalendarRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	df, err := LoadTable(s.CalendarPath, CalendarColumns...)
	if err != nil {
		return nil, err
	}

	ids := column(df, "listing_id")
	dates := column(df, "date")
	available := column(df, "available")
	prices := column(df, "price")

	rows := make([]models.CalendarRow, df.Nrow())
	for i := range rows {
		rows[i] = models.CalendarRow{
			ListingID: ids[i],
			Date:      dates[i],
			Available: available[i],
			Price:     prices[i],
		}
	}
	return rows, nil
}

// Listings loads every listing row in file order.
func (s *CSVSource) Listings(ctx context.Context) ([]models.ListingRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	df, err := LoadTable(s.ListingsPath, ListingColumns...)
	if err != nil {
		return nil, err
	}

	ids := column(df, "id")
	lats := column(df, "latitude")
	lngs := column(df, "longitude")
	types := column(df, "room_type")
	prices := column(df, "price")

	rows := make([]models.ListingRow, df.Nrow())
	for i := range rows {
		rows[i] = models.ListingRow{
			ID:        ids[i],
			Latitude:  lats[i],
			Longitude: lngs[i],
			RoomType:  types[i],
			Price:     prices[i],
		}
	}
	return rows, nil
}
