package storage

import (
	"context"
	"path/filepath"
	"testing"

	"airbnb-dashboard/models"
)

func TestCSVWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "calendar_clean.csv")
	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}

	rows := []models.CalendarRow{
		{ListingID: "241032", Date: "2016-01-04", Available: "t", Price: "$85.00"},
		{ListingID: "3308979", Date: "2016-01-04", Available: "t", Price: "$1200.00"},
	}
	if err := w.WriteCalendar(rows[:1]); err != nil {
		t.Fatalf("WriteCalendar: %v", err)
	}
	if err := w.WriteCalendar(rows[1:]); err != nil {
		t.Fatalf("WriteCalendar: %v", err)
	}
	if w.Rows() != 2 {
		t.Errorf("Rows: got %d, want 2", w.Rows())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := NewCSVSource(path, "").Calendar(context.Background())
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("rows: got %d, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d: got %+v, want %+v", i, got[i], rows[i])
		}
	}
}

func TestCSVWriterBadPath(t *testing.T) {
	blocker := writeFile(t, "blocker", "x")
	if _, err := NewCSVWriter(filepath.Join(blocker, "calendar.csv")); err == nil {
		t.Error("expected an error when the parent is a file")
	}
}
