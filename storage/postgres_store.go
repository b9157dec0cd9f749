package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"airbnb-dashboard/models"
	"airbnb-dashboard/utils"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const batchSize = 500

// PostgresStore keeps the raw calendar and listings tables in PostgreSQL.
// Cells are stored as the original file text so both sources feed the
// same cleaning code.
type PostgresStore struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresStore opens a connection to PostgreSQL and waits for it to
// answer a ping, retrying with back-off.
func NewPostgresStore(ctx context.Context, dsn string, retry *utils.RetryConfig, logger *utils.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	err = retry.Do(ctx, "postgres-ping", func() error {
		return db.PingContext(ctx)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return &PostgresStore{db: db, logger: logger}, nil
}

// Migrate brings the schema up to date.
func (ps *PostgresStore) Migrate() error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("postgres: migrate dialect: %w", err)
	}
	if err := goose.Up(ps.db, "migrations"); err != nil {
		return fmt.Errorf("postgres: migrate: %w", err)
	}
	return nil
}

// ReplaceCalendar swaps the stored calendar rows for rows in one transaction.
func (ps *PostgresStore) ReplaceCalendar(ctx context.Context, rows []models.CalendarRow) error {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.ListingID, r.Date, r.Available, r.Price}
	}
	return ps.replace(ctx, "calendar", []string{"listing_id", "date", "available", "price"}, values)
}

// ReplaceListings swaps the stored listing rows for rows in one transaction.
func (ps *PostgresStore) ReplaceListings(ctx context.Context, rows []models.ListingRow) error {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.ID, r.Latitude, r.Longitude, r.RoomType, r.Price}
	}
	return ps.replace(ctx, "listings", []string{"listing_id", "latitude", "longitude", "room_type", "price"}, values)
}

func (ps *PostgresStore) replace(ctx context.Context, table string, columns []string, values [][]any) error {
	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin %s: %w", table, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("postgres: clear %s: %w", table, err)
	}

	for i := 0; i < len(values); i += batchSize {
		end := i + batchSize
		if end > len(values) {
			end = len(values)
		}
		if err := insertBatch(ctx, tx, table, columns, values[i:end]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit %s: %w", table, err)
	}
	ps.logger.Info("[postgres] Stored %d rows in %s", len(values), table)
	return nil
}

func insertBatch(ctx context.Context, tx *sql.Tx, table string, columns []string, batch [][]any) error {
	args := make([]any, 0, len(batch)*len(columns))
	for _, row := range batch {
		args = append(args, row...)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		table, strings.Join(columns, ", "), placeholders(len(batch), len(columns)))

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("postgres: insert into %s: %w", table, err)
	}
	return nil
}

// placeholders renders "($1,$2),($3,$4)" style value groups.
func placeholders(rows, cols int) string {
	groups := make([]string, rows)
	n := 1
	for r := 0; r < rows; r++ {
		params := make([]string, cols)
		for c := 0; c < cols; c++ {
			params[c] = fmt.Sprintf("$%d", n)
			n++
		}
		groups[r] = "(" + strings.Join(params, ",") + ")"
	}
	return strings.Join(groups, ",")
}

// Calendar returns the stored calendar rows in insertion order.
func (ps *PostgresStore) Calendar(ctx context.Context) ([]models.CalendarRow, error) {
	rows, err := ps.db.QueryContext(ctx, `
		SELECT listing_id, date, available, price
		FROM calendar
		ORDER BY id
	`)
	if err != nil {
		return nil, &models.DataLoadError{Path: "postgres:calendar", Err: err}
	}
	defer rows.Close()

	var out []models.CalendarRow
	for rows.Next() {
		var r models.CalendarRow
		if err := rows.Scan(&r.ListingID, &r.Date, &r.Available, &r.Price); err != nil {
			return nil, &models.DataLoadError{Path: "postgres:calendar", Err: err}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.DataLoadError{Path: "postgres:calendar", Err: err}
	}
	return out, nil
}

// Listings returns the stored listing rows in insertion order.
func (ps *PostgresStore) Listings(ctx context.Context) ([]models.ListingRow, error) {
	rows, err := ps.db.QueryContext(ctx, `
		SELECT listing_id, latitude, longitude, room_type, price
		FROM listings
		ORDER BY id
	`)
	if err != nil {
		return nil, &models.DataLoadError{Path: "postgres:listings", Err: err}
	}
	defer rows.Close()

	var out []models.ListingRow
	for rows.Next() {
		var r models.ListingRow
		if err := rows.Scan(&r.ID, &r.Latitude, &r.Longitude, &r.RoomType, &r.Price); err != nil {
			return nil, &models.DataLoadError{Path: "postgres:listings", Err: err}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.DataLoadError{Path: "postgres:listings", Err: err}
	}
	return out, nil
}

// Close releases the connection pool.
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
