package storage

import (
	"context"

	"airbnb-dashboard/models"
)

// Source is the interface any input backend must satisfy.
// Implementations re-read their backing data on every call.
type Source interface {
	Calendar(ctx context.Context) ([]models.CalendarRow, error)
	Listings(ctx context.Context) ([]models.ListingRow, error)
}
