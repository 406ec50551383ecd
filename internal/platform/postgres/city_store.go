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

const citySelect = `
	SELECT ci.city_id, ci.city_code, ci.city_name, ci.state_id, s.state_name, co.country_name,
	       ci.created_on, ci.created_by, ci.updated_on, ci.updated_by
	FROM city ci
	JOIN state s ON s.state_id = ci.state_id
	JOIN country co ON co.country_id = s.country_id`

// PostgresCityStore implements the store.CityStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCityStore creates a new PostgreSQL implementation of the CityStore interface.
func NewPostgresCityStore(db store.DBTX, logger *slog.Logger) *PostgresCityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCityStore{
		db:     db,
		logger: logger.With(slog.String("component", "city_store")),
	}
}

var _ store.CityStore = (*PostgresCityStore)(nil)

// WithTx implements store.CityStore.WithTx
func (s *PostgresCityStore) WithTx(tx *sql.Tx) store.CityStore {
	return &PostgresCityStore{
		db:     tx,
		logger: s.logger,
	}
}

func scanCity(row rowScanner) (*domain.City, error) {
	var c domain.City
	var audit auditColumns
	dest := append([]any{&c.ID, &c.Code, &c.Name, &c.StateID, &c.StateName, &c.CountryName}, audit.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	c.Audit = audit.toDomain()
	return &c, nil
}

// List implements store.CityStore.List
func (s *PostgresCityStore) List(ctx context.Context) ([]*domain.City, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, citySelect+` ORDER BY ci.city_id`)
	if err != nil {
		log.Error("failed to query cities", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	cities := make([]*domain.City, 0)
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			log.Error("failed to scan city row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating city rows: %w", err)
	}

	return cities, nil
}

// GetByID implements store.CityStore.GetByID
func (s *PostgresCityStore) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	c, err := scanCity(s.db.QueryRowContext(ctx, citySelect+` WHERE ci.city_id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("city not found", slog.Int64("city_id", id))
			return nil, store.ErrCityNotFound
		}
		log.Error("failed to get city by ID",
			slog.String("error", err.Error()),
			slog.Int64("city_id", id))
		return nil, MapError(err)
	}

	return c, nil
}

// Create implements store.CityStore.Create
func (s *PostgresCityStore) Create(ctx context.Context, city *domain.City) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO city (city_code, city_name, state_id, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING city_id
	`, city.Code, city.Name, city.StateID, city.CreatedBy).Scan(&id)
	if err != nil {
		if !IsUniqueViolation(err) && !IsForeignKeyViolation(err) {
			log.Error("failed to create city",
				slog.String("error", err.Error()),
				slog.String("city_code", city.Code))
		}
		return 0, MapError(err)
	}

	log.Info("city created",
		slog.Int64("city_id", id),
		slog.String("city_code", city.Code))
	return id, nil
}

// Update implements store.CityStore.Update
// The state a city belongs to is fixed at creation.
func (s *PostgresCityStore) Update(ctx context.Context, city *domain.City) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		UPDATE city
		SET city_code = $1, city_name = $2, updated_by = $3, updated_on = now()
		WHERE city_id = $4
	`, city.Code, city.Name, city.UpdatedBy, city.ID)
	if err != nil {
		log.Error("failed to update city",
			slog.String("error", err.Error()),
			slog.Int64("city_id", city.ID))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrCityNotFound)
}

// Delete implements store.CityStore.Delete
func (s *PostgresCityStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM city WHERE city_id = $1`, id)
	if err != nil {
		log.Error("failed to delete city",
			slog.String("error", err.Error()),
			slog.Int64("city_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrCityNotFound)
}

// ExistsByCode implements store.CityStore.ExistsByCode
func (s *PostgresCityStore) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return exists(ctx, s.db, `SELECT EXISTS (SELECT 1 FROM city WHERE city_code = $1)`, code)
}

// ExistsByName implements store.CityStore.ExistsByName
func (s *PostgresCityStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	return exists(ctx, s.db, `SELECT EXISTS (SELECT 1 FROM city WHERE city_name = $1)`, name)
}
