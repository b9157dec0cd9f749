package storage

import (
	"context"
	"fmt"
)

// Seed copies both tables from src into the store, replacing what it held.
func Seed(ctx context.Context, src Source, dst *PostgresStore) error {
	calendar, err := src.Calendar(ctx)
	if err != nil {
		return fmt.Errorf("seed: read calendar: %w", err)
	}
	if err := dst.ReplaceCalendar(ctx, calendar); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	listings, err := src.Listings(ctx)
	if err != nil {
		return fmt.Errorf("seed: read listings: %w", err)
	}
	if err := dst.ReplaceListings(ctx, listings); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
