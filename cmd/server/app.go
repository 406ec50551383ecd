package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/precise-api/internal/api"
	"github.com/phrazzld/precise-api/internal/api/middleware"
	"github.com/phrazzld/precise-api/internal/config"
	"github.com/phrazzld/precise-api/internal/platform/metrics"
	"github.com/phrazzld/precise-api/internal/platform/postgres"
	"github.com/phrazzld/precise-api/internal/service"
	"github.com/phrazzld/precise-api/internal/service/auth"
)

// requestLogSink is the part of the request log the application owns.
type requestLogSink interface {
	middleware.EntrySink
	Close() error
}

// application holds the shared dependencies and releases them on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	metrics *metrics.Metrics
	sink    requestLogSink

	jwtService auth.JWTService
	gate       *middleware.AuthGate

	authHandler    *api.AuthHandler
	countryHandler *api.CountryHandler
	stateHandler   *api.StateHandler
	cityHandler    *api.CityHandler
}

// newApplication wires stores, services and handlers around an open pool.
// The token secret is validated here; a missing or weak secret fails startup.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB, sink requestLogSink) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		metrics: metrics.New(),
		sink:    sink,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	countryStore := postgres.NewPostgresCountryStore(db, logger)
	stateStore := postgres.NewPostgresStateStore(db, logger)
	cityStore := postgres.NewPostgresCityStore(db, logger)
	userStore := postgres.NewPostgresUserStore(db, logger)
	reasonStore := postgres.NewPostgresReasonStore(db, logger)

	mutator, err := service.NewAuditedMutator(db, reasonStore, app.metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create audited mutator: %w", err)
	}

	countryService, err := service.NewCountryService(countryStore, mutator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create country service: %w", err)
	}
	stateService, err := service.NewStateService(stateStore, countryStore, mutator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create state service: %w", err)
	}
	cityService, err := service.NewCityService(cityStore, stateStore, mutator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create city service: %w", err)
	}

	base := cfg.Server.BasePath
	app.gate = middleware.NewAuthGate(app.jwtService, []string{
		base + loginPath,
		base + healthPath,
		base + metricsPath,
	}, logger)

	app.authHandler = api.NewAuthHandler(userStore, app.jwtService, auth.NewBcryptVerifier(), logger)
	app.countryHandler = api.NewCountryHandler(countryService, logger)
	app.stateHandler = api.NewStateHandler(stateService, logger)
	app.cityHandler = api.NewCityHandler(cityService, logger)

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup flushes the request log and closes the pool.
func (app *application) cleanup() {
	if app.sink != nil {
		if err := app.sink.Close(); err != nil {
			app.logger.Error("error closing request log", slog.String("error", err.Error()))
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
