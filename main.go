package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"airbnb-dashboard/config"
	"airbnb-dashboard/models"
	"airbnb-dashboard/server"
	"airbnb-dashboard/services"
	"airbnb-dashboard/snapshot"
	"airbnb-dashboard/storage"
	"airbnb-dashboard/utils"
)

func main() {
	mode := flag.String("mode", "serve", "run mode: serve, seed, snapshot, report or export")
	flag.Parse()

	cfg := config.Load()
	logger := utils.NewLoggerWithLevel(cfg.LogLevel)

	gin.SetMode(cfg.GinMode)
	gin.DefaultWriter = logger.Writer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("=== Airbnb Dashboard starting (mode: %s) ===", *mode)
	logger.Info("Config | source: %s | city: %s | year: %d | period: %d",
		cfg.DataSource, cfg.City, cfg.ReportYear, cfg.DecompositionPeriod)

	var err error
	switch *mode {
	case "serve":
		err = runServe(ctx, cfg, logger)
	case "seed":
		err = runSeed(ctx, cfg, logger)
	case "snapshot":
		err = runSnapshot(ctx, cfg, logger)
	case "report":
		err = runReport(ctx, cfg, logger)
	case "export":
		err = runExport(ctx, cfg, logger)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}

	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func newRetry(cfg *config.Config, logger *utils.Logger) *utils.RetryConfig {
	return &utils.RetryConfig{
		MaxAttempts: cfg.MaxRetries,
		BaseDelay:   2 * time.Second,
		Logger:      logger,
	}
}

// openSource returns the configured data source and a function releasing it.
func openSource(ctx context.Context, cfg *config.Config, logger *utils.Logger) (storage.Source, func(), error) {
	switch cfg.DataSource {
	case config.SourceCSV:
		logger.Info("Reading %s and %s", cfg.CalendarPath, cfg.ListingsPath)
		return storage.NewCSVSource(cfg.CalendarPath, cfg.ListingsPath), func() {}, nil
	case config.SourcePostgres:
		store, err := storage.NewPostgresStore(ctx, cfg.DSN(), newRetry(cfg, logger), logger)
		if err != nil {
			logger.Error("Make sure Docker is running: docker compose up -d")
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown DATA_SOURCE %q", cfg.DataSource)
	}
}

func newDashboard(source storage.Source, cfg *config.Config, logger *utils.Logger) *services.Dashboard {
	return services.NewDashboard(
		source,
		services.NewClassicalDecomposer(cfg.DecompositionPeriod),
		services.NewChartAssembler(cfg.City, cfg.ReportYear),
		services.NewListingMapper(logger, cfg.MapCenterLat, cfg.MapCenterLng, cfg.MapZoom),
		logger,
	)
}

func newHTTPServer(dashboard *services.Dashboard, cfg *config.Config, logger *utils.Logger) *http.Server {
	router := server.NewRouter(&server.Config{
		DashboardHandler: server.NewDashboardHandler(dashboard, logger),
		Logger:           logger,
		RateLimitRPS:     cfg.RateLimitRPS,
		RateLimitBurst:   cfg.RateLimitBurst,
	})
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func runServe(ctx context.Context, cfg *config.Config, logger *utils.Logger) error {
	source, closeSource, err := openSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	srv := newHTTPServer(newDashboard(source, cfg, logger), cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening on %s (dashboard at /airbnb-dashboard, map at /map)", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runSeed(ctx context.Context, cfg *config.Config, logger *utils.Logger) error {
	store, err := storage.NewPostgresStore(ctx, cfg.DSN(), newRetry(cfg, logger), logger)
	if err != nil {
		logger.Error("Make sure Docker is running: docker compose up -d")
		return err
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		return err
	}

	src := storage.NewCSVSource(cfg.CalendarPath, cfg.ListingsPath)
	if err := storage.Seed(ctx, src, store); err != nil {
		return err
	}

	logger.Info("Seeded PostgreSQL from %s and %s", cfg.CalendarPath, cfg.ListingsPath)
	return nil
}

func runSnapshot(ctx context.Context, cfg *config.Config, logger *utils.Logger) error {
	source, closeSource, err := openSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	srv := newHTTPServer(newDashboard(source, cfg, logger), cfg, logger)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("snapshot: listen: %w", err)
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("[server] %v", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	capturer := snapshot.New(snapshot.Options{
		BaseURL:        "http://" + ln.Addr().String(),
		OutputDir:      cfg.SnapshotDir,
		ChromeBin:      cfg.ChromeBin,
		MaxConcurrency: cfg.MaxConcurrency,
		MaxRetries:     cfg.MaxRetries,
	}, logger)

	files, err := capturer.Capture(ctx, snapshot.DefaultTargets)
	for _, f := range files {
		fmt.Printf("  Saved %s\n", f)
	}
	return err
}

func runReport(ctx context.Context, cfg *config.Config, logger *utils.Logger) error {
	source, closeSource, err := openSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	summary, err := newDashboard(source, cfg, logger).Summary(ctx)
	if err != nil {
		return err
	}
	services.PrintSummary(os.Stdout, summary)
	return nil
}

func runExport(ctx context.Context, cfg *config.Config, logger *utils.Logger) error {
	source, closeSource, err := openSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	rows, err := newDashboard(source, cfg, logger).CleanedCalendar(ctx)
	if err != nil {
		return err
	}

	csvWriter, err := storage.NewCSVWriter(cfg.CleanedCSVPath)
	if err != nil {
		return err
	}
	defer csvWriter.Close()

	out := make([]models.CalendarRow, len(rows))
	for i, r := range rows {
		out[i] = r.Raw()
	}
	if err := csvWriter.WriteCalendar(out); err != nil {
		return err
	}

	logger.Info("Cleaned calendar saved to %s (%d rows)", cfg.CleanedCSVPath, csvWriter.Rows())
	return nil
}
