// Package main is the entry point for the Precise master-data API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/phrazzld/precise-api/internal/config"
	"github.com/phrazzld/precise-api/internal/platform/logger"
	"github.com/phrazzld/precise-api/internal/platform/requestlog"
	"github.com/phrazzld/precise-api/internal/redact"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a goose migration command (up, down, status, version, reset) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("precise-api: %v", redact.Error(err))
	}
}

// run performs startup in order: config, logger, log directory, database,
// optional migrations, application, HTTP server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("base_path", cfg.Server.BasePath))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg.Database, l)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() { _ = db.Close() }()
		return runMigrations(ctx, db, migrateCmd, l)
	}

	if err := os.MkdirAll(cfg.RequestLog.Dir, 0o755); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to create request log directory: %w", err)
	}
	sink := requestlog.NewDailyFileSink(cfg.RequestLog.Dir, cfg.RequestLog.QueueSize, l)

	app, err := newApplication(cfg, l, db, sink)
	if err != nil {
		_ = sink.Close()
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
