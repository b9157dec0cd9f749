package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Data sources the dashboard can read from.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string

	DataSource     string
	CalendarPath   string
	ListingsPath   string
	CleanedCSVPath string

	City                string
	ReportYear          int
	MapCenterLat        float64
	MapCenterLng        float64
	MapZoom             int
	DecompositionPeriod int

	RateLimitRPS   float64
	RateLimitBurst int

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	MaxRetries     int
	MaxConcurrency int
	SnapshotDir    string
	ChromeBin      string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "release"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		DataSource:     strings.ToLower(getEnv("DATA_SOURCE", SourceCSV)),
		CalendarPath:   getEnv("CALENDAR_CSV", "data/calendar.csv"),
		ListingsPath:   getEnv("LISTINGS_CSV", "data/listings.csv"),
		CleanedCSVPath: getEnv("CLEANED_CSV", "./output/calendar_clean.csv"),

		City:                getEnv("CITY", "Seattle"),
		ReportYear:          getEnvInt("REPORT_YEAR", 2016),
		MapCenterLat:        getEnvFloat("MAP_CENTER_LAT", 47.6062),
		MapCenterLng:        getEnvFloat("MAP_CENTER_LNG", -122.3321),
		MapZoom:             getEnvInt("MAP_ZOOM", 12),
		DecompositionPeriod: getEnvInt("DECOMPOSITION_PERIOD", 7),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "dashboard"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "dashboard123"),
		PostgresDB:       getEnv("POSTGRES_DB", "rental_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 2),
		SnapshotDir:    getEnv("SNAPSHOT_DIR", "./output/snapshots"),
		ChromeBin:      getEnv("CHROME_BIN", ""),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.ServerPort
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}
