package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/phrazzld/precise-api/internal/platform/postgres/migrations"
)

// slogGooseLogger adapts goose's printf logger to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

var _ goose.Logger = (*slogGooseLogger)(nil)

// Printf forwards goose progress output at info level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level. It does not exit; the error reaches main through
// the goose return value.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// runMigrations applies the embedded migrations with the given goose command.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	migrationLogger := logger.With(slog.String("component", "migrations"))
	goose.SetLogger(&slogGooseLogger{logger: migrationLogger})

	migrationLogger.Info("running migrations", slog.String("command", command))
	if err := migrations.Run(ctx, db, command); err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}
	migrationLogger.Info("migrations finished", slog.String("command", command))
	return nil
}
