package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CITY", "")
	t.Setenv("DECOMPOSITION_PERIOD", "")
	t.Setenv("DATA_SOURCE", "")

	cfg := Load()
	if cfg.City != "Seattle" {
		t.Errorf("City: got %q, want Seattle", cfg.City)
	}
	if cfg.DecompositionPeriod != 7 {
		t.Errorf("DecompositionPeriod: got %d, want 7", cfg.DecompositionPeriod)
	}
	if cfg.DataSource != SourceCSV {
		t.Errorf("DataSource: got %q, want %q", cfg.DataSource, SourceCSV)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CITY", "Boston")
	t.Setenv("REPORT_YEAR", "2017")
	t.Setenv("MAP_CENTER_LAT", "42.3601")
	t.Setenv("DATA_SOURCE", "Postgres")

	cfg := Load()
	if cfg.City != "Boston" || cfg.ReportYear != 2017 {
		t.Errorf("got city=%q year=%d", cfg.City, cfg.ReportYear)
	}
	if cfg.MapCenterLat != 42.3601 {
		t.Errorf("MapCenterLat: got %v", cfg.MapCenterLat)
	}
	if cfg.DataSource != SourcePostgres {
		t.Errorf("DataSource: got %q, want %q", cfg.DataSource, SourcePostgres)
	}
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("MAP_ZOOM", "twelve")
	if got := getEnvInt("MAP_ZOOM", 12); got != 12 {
		t.Errorf("getEnvInt: got %d, want fallback 12", got)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		PostgresHost: "db", PostgresPort: "5432", PostgresUser: "u",
		PostgresPassword: "p", PostgresDB: "rental_db", PostgresSSLMode: "disable",
	}
	want := "host=db port=5432 user=u password=p dbname=rental_db sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN: got %q, want %q", got, want)
	}
}
