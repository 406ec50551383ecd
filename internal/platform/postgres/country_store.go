package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/platform/logger"
	"github.com/phrazzld/precise-api/internal/store"
)

const countryColumns = `country_id, country_code, country_name, created_on, created_by, updated_on, updated_by`

// PostgresCountryStore implements the store.CountryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCountryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCountryStore creates a new PostgreSQL implementation of the CountryStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCountryStore(db store.DBTX, logger *slog.Logger) *PostgresCountryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCountryStore{
		db:     db,
		logger: logger.With(slog.String("component", "country_store")),
	}
}

// Ensure PostgresCountryStore implements store.CountryStore interface
var _ store.CountryStore = (*PostgresCountryStore)(nil)

// WithTx implements store.CountryStore.WithTx
func (s *PostgresCountryStore) WithTx(tx *sql.Tx) store.CountryStore {
	return &PostgresCountryStore{
		db:     tx,
		logger: s.logger,
	}
}

func scanCountry(row rowScanner) (*domain.Country, error) {
	var c domain.Country
	var audit auditColumns
	dest := append([]any{&c.ID, &c.Code, &c.Name}, audit.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	c.Audit = audit.toDomain()
	return &c, nil
}

// List implements store.CountryStore.List
func (s *PostgresCountryStore) List(ctx context.Context) ([]*domain.Country, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+countryColumns+` FROM country ORDER BY country_id`)
	if err != nil {
		log.Error("failed to query countries", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	countries := make([]*domain.Country, 0)
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			log.Error("failed to scan country row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan country row: %w", err)
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating country rows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("error iterating country rows: %w", err)
	}

	return countries, nil
}

// GetByID implements store.CountryStore.GetByID
// Returns store.ErrCountryNotFound if the country does not exist.
func (s *PostgresCountryStore) GetByID(ctx context.Context, id int64) (*domain.Country, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	c, err := scanCountry(s.db.QueryRowContext(ctx,
		`SELECT `+countryColumns+` FROM country WHERE country_id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("country not found", slog.Int64("country_id", id))
			return nil, store.ErrCountryNotFound
		}
		log.Error("failed to get country by ID",
			slog.String("error", err.Error()),
			slog.Int64("country_id", id))
		return nil, MapError(err)
	}

	return c, nil
}

// Create implements store.CountryStore.Create
// Returns store.ErrDuplicate if the country code is already taken.
func (s *PostgresCountryStore) Create(ctx context.Context, country *domain.Country) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO country (country_code, country_name, created_by)
		VALUES ($1, $2, $3)
		RETURNING country_id
	`, country.Code, country.Name, country.CreatedBy).Scan(&id)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrDuplicate) {
			log.Warn("duplicate country code", slog.String("country_code", country.Code))
		} else {
			log.Error("failed to create country",
				slog.String("error", err.Error()),
				slog.String("country_code", country.Code))
		}
		return 0, mapped
	}

	log.Info("country created",
		slog.Int64("country_id", id),
		slog.String("country_code", country.Code))
	return id, nil
}

// Update implements store.CountryStore.Update
// Returns store.ErrCountryNotFound when no row matched country.ID.
func (s *PostgresCountryStore) Update(ctx context.Context, country *domain.Country) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		UPDATE country
		SET country_code = $1, country_name = $2, updated_by = $3, updated_on = now()
		WHERE country_id = $4
	`, country.Code, country.Name, country.UpdatedBy, country.ID)
	if err != nil {
		log.Error("failed to update country",
			slog.String("error", err.Error()),
			slog.Int64("country_id", country.ID))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrCountryNotFound)
}

// Delete implements store.CountryStore.Delete
// Returns store.ErrCountryNotFound when no row matched, and store.ErrInvalidEntity
// while states still reference the country.
func (s *PostgresCountryStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM country WHERE country_id = $1`, id)
	if err != nil {
		log.Error("failed to delete country",
			slog.String("error", err.Error()),
			slog.Int64("country_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrCountryNotFound)
}

// ExistsByID implements store.CountryStore.ExistsByID
func (s *PostgresCountryStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, s.db, `SELECT EXISTS (SELECT 1 FROM country WHERE country_id = $1)`, id)
}

// ExistsByCode implements store.CountryStore.ExistsByCode
func (s *PostgresCountryStore) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return exists(ctx, s.db, `SELECT EXISTS (SELECT 1 FROM country WHERE country_code = $1)`, code)
}

// ExistsByName implements store.CountryStore.ExistsByName
func (s *PostgresCountryStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	return exists(ctx, s.db, `SELECT EXISTS (SELECT 1 FROM country WHERE country_name = $1)`, name)
}

func exists(ctx context.Context, db store.DBTX, query string, arg any) (bool, error) {
	var found bool
	if err := db.QueryRowContext(ctx, query, arg).Scan(&found); err != nil {
		logger.FromContext(ctx).Error("existence check failed",
			slog.String("error", err.Error()))
		return false, MapError(err)
	}
	return found, nil
}
