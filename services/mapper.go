package services

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"airbnb-dashboard/models"
	"airbnb-dashboard/utils"
)

// listingPriceNoise matches the currency, percent and thousands symbols
// stripped from listing prices.
var listingPriceNoise = regexp.MustCompile(`[$%,]`)

var (
	errMissing    = errors.New("missing")
	errNotNumeric = errors.New("not a number")
	errOutOfRange = errors.New("out of range")
)

// markerRadius is the circle radius of every listing marker.
const markerRadius = 0.5

// ListingMapper turns listing rows into map markers.
type ListingMapper struct {
	logger    *utils.Logger
	centerLat float64
	centerLng float64
	zoom      int
}

// NewListingMapper creates a mapper whose marker sets are centred on the given point.
func NewListingMapper(logger *utils.Logger, centerLat, centerLng float64, zoom int) *ListingMapper {
	return &ListingMapper{logger: logger, centerLat: centerLat, centerLng: centerLng, zoom: zoom}
}

// ColorFor maps a room type to its marker color.
func ColorFor(roomType string) models.MarkerColor {
	switch roomType {
	case models.RoomTypeEntireHome:
		return models.ColorRed
	case models.RoomTypePrivateRoom:
		return models.ColorGreen
	default:
		return models.ColorYellow
	}
}

// Map builds one marker per well-formed row. Malformed rows are skipped and
// counted; Map fails only when rows is non-empty and none is usable.
func (m *ListingMapper) Map(rows []models.ListingRow) (*models.MarkerSet, error) {
	set := &models.MarkerSet{
		CenterLat: m.centerLat,
		CenterLng: m.centerLng,
		Zoom:      m.zoom,
		Markers:   make([]models.Marker, 0, len(rows)),
	}

	var lastErr error
	for i, r := range rows {
		marker, err := toMarker(i, r)
		if err != nil {
			m.logger.Warn("[mapper] Skipping listing: %v", err)
			set.Skipped++
			lastErr = err
			continue
		}
		set.Markers = append(set.Markers, marker)
	}

	if len(set.Markers) == 0 && lastErr != nil {
		return nil, lastErr
	}

	m.logger.Info("[mapper] Built %d markers (skipped %d malformed listings)",
		len(set.Markers), set.Skipped)
	return set, nil
}

func toMarker(row int, r models.ListingRow) (models.Marker, error) {
	lat, err := parseCoordinate(r.Latitude, 90)
	if err != nil {
		return models.Marker{}, &models.ListingRowError{Row: row, Field: "latitude", Value: r.Latitude, Reason: err.Error()}
	}
	lng, err := parseCoordinate(r.Longitude, 180)
	if err != nil {
		return models.Marker{}, &models.ListingRowError{Row: row, Field: "longitude", Value: r.Longitude, Reason: err.Error()}
	}
	if strings.TrimSpace(r.RoomType) == "" {
		return models.Marker{}, &models.ListingRowError{Row: row, Field: "room_type", Value: r.RoomType, Reason: "missing"}
	}
	// The cleaned price only validates the row; the popup shows the raw text.
	if _, err := cleanListingPrice(r.Price); err != nil {
		return models.Marker{}, &models.ListingRowError{Row: row, Field: "price", Value: r.Price, Reason: err.Error()}
	}

	return models.Marker{
		Latitude:  lat,
		Longitude: lng,
		Color:     ColorFor(r.RoomType),
		Radius:    markerRadius,
		Popup:     r.Price,
	}, nil
}

func parseCoordinate(raw string, limit float64) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errMissing
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errNotNumeric
	}
	if v < -limit || v > limit {
		return 0, errOutOfRange
	}
	return v, nil
}

func cleanListingPrice(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(listingPriceNoise.ReplaceAllString(raw, ""))
	if s == "" {
		return decimal.Decimal{}, errMissing
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errNotNumeric
	}
	return d, nil
}
