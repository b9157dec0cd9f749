package services

import (
	"errors"
	"testing"

	"airbnb-dashboard/models"
)

func newTestMapper() *ListingMapper {
	return NewListingMapper(newTestLogger(), 47.6062, -122.3321, 12)
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		roomType string
		want     models.MarkerColor
	}{
		{"Entire home/apt", models.ColorRed},
		{"Private room", models.ColorGreen},
		{"Shared room", models.ColorYellow},
		{"Hotel room", models.ColorYellow},
		{"private room", models.ColorYellow},
		{"", models.ColorYellow},
	}

	for _, tt := range tests {
		if got := ColorFor(tt.roomType); got != tt.want {
			t.Errorf("ColorFor(%q) = %q; want %q", tt.roomType, got, tt.want)
		}
	}
}

func TestMapperExample(t *testing.T) {
	set, err := newTestMapper().Map([]models.ListingRow{
		{Latitude: "47.6", Longitude: "-122.3", RoomType: "Entire home/apt", Price: "$150.00"},
		{Latitude: "47.61", Longitude: "-122.31", RoomType: "Private room", Price: "$75"},
	})
	if err != nil {
		t.Fatalf("Map: %v", err)
	}

	want := []models.Marker{
		{Latitude: 47.6, Longitude: -122.3, Color: models.ColorRed, Radius: 0.5, Popup: "$150.00"},
		{Latitude: 47.61, Longitude: -122.31, Color: models.ColorGreen, Radius: 0.5, Popup: "$75"},
	}
	if len(set.Markers) != len(want) {
		t.Fatalf("markers: got %d, want %d", len(set.Markers), len(want))
	}
	for i := range want {
		if set.Markers[i] != want[i] {
			t.Errorf("marker %d: got %+v, want %+v", i, set.Markers[i], want[i])
		}
	}
	if set.Skipped != 0 {
		t.Errorf("skipped: got %d, want 0", set.Skipped)
	}
	if set.CenterLat != 47.6062 || set.Zoom != 12 {
		t.Errorf("centre/zoom: got %v/%d", set.CenterLat, set.Zoom)
	}
}

func TestMapperPopupKeepsRawPrice(t *testing.T) {
	set, err := newTestMapper().Map([]models.ListingRow{
		{Latitude: "47.6", Longitude: "-122.3", RoomType: "Shared room", Price: "$1,250.00"},
	})
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if set.Markers[0].Popup != "$1,250.00" {
		t.Errorf("popup: got %q, want the uncleaned text", set.Markers[0].Popup)
	}
}

func TestMapperSkipsMalformedRows(t *testing.T) {
	set, err := newTestMapper().Map([]models.ListingRow{
		{Latitude: "47.6", Longitude: "-122.3", RoomType: "Entire home/apt", Price: "$150.00"},
		{Latitude: "", Longitude: "-122.3", RoomType: "Entire home/apt", Price: "$150.00"},
		{Latitude: "47.6", Longitude: "west", RoomType: "Private room", Price: "$80.00"},
		{Latitude: "47.6", Longitude: "-122.3", RoomType: "", Price: "$80.00"},
		{Latitude: "47.6", Longitude: "-122.3", RoomType: "Private room", Price: "free"},
		{Latitude: "147.6", Longitude: "-122.3", RoomType: "Private room", Price: "$80.00"},
	})
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(set.Markers) != 1 {
		t.Errorf("markers: got %d, want 1", len(set.Markers))
	}
	if set.Skipped != 5 {
		t.Errorf("skipped: got %d, want 5", set.Skipped)
	}
}

func TestMapperAllRowsMalformed(t *testing.T) {
	_, err := newTestMapper().Map([]models.ListingRow{
		{Latitude: "", Longitude: "", RoomType: "Private room", Price: "$80.00"},
	})

	var rowErr *models.ListingRowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("expected ListingRowError, got %v", err)
	}
	if rowErr.Field != "latitude" {
		t.Errorf("field: got %q, want latitude", rowErr.Field)
	}
}

func TestMapperEmptyInput(t *testing.T) {
	set, err := newTestMapper().Map(nil)
	if err != nil {
		t.Fatalf("Map(nil): %v", err)
	}
	if len(set.Markers) != 0 {
		t.Errorf("expected no markers, got %d", len(set.Markers))
	}
}
