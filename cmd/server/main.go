package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vsmetools/validator/internal/config"
	"github.com/vsmetools/validator/internal/excel"
	"github.com/vsmetools/validator/internal/logging"
	"github.com/vsmetools/validator/internal/taxonomy"
	"github.com/vsmetools/validator/internal/validation"
	"github.com/vsmetools/validator/internal/web"
	"github.com/vsmetools/validator/internal/xbrl"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"addr", cfg.Server.Addr(),
		"max_file_size", cfg.Upload.MaxFileSize,
		"taxonomy_packages", len(cfg.Taxonomy.Packages),
		"work_offline", cfg.Taxonomy.WorkOffline,
	)

	// Load the shared taxonomy reference data up front; request handlers
	// only ever read it after this point.
	if err := taxonomy.EnsureLoaded(); err != nil {
		slog.Error("failed to load taxonomy reference data", "error", err)
		os.Exit(1)
	}
	tax, _ := taxonomy.Default()
	slog.Info("taxonomy loaded", "namespace", tax.Namespace(), "concepts", tax.Len())

	// Wire the pipeline
	mapping, err := excel.VSMEDefaults()
	if err != nil {
		slog.Error("failed to load VSME cell mappings", "error", err)
		os.Exit(1)
	}
	extractor := excel.NewProcessor(mapping)

	validator, err := xbrl.NewReportProcessor(xbrl.Options{
		TaxonomyPackages: cfg.Taxonomy.Packages,
		WorkOffline:      cfg.Taxonomy.WorkOffline,
	})
	if err != nil {
		slog.Error("failed to create report processor", "error", err)
		os.Exit(1)
	}

	runner := validation.NewRunner(extractor, validator)
	server := web.NewServer(runner, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
