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

const stateSelect = `
	SELECT s.state_id, s.state_code, s.state_name, s.country_id, c.country_name,
	       s.created_on, s.created_by, s.updated_on, s.updated_by
	FROM state s
	JOIN country c ON c.country_id = s.country_id`

// PostgresStateStore implements the store.StateStore interface
// using a PostgreSQL database as the storage backend.
type PostgresStateStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStateStore creates a new PostgreSQL implementation of the StateStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresStateStore(db store.DBTX, logger *slog.Logger) *PostgresStateStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStateStore{
		db:     db,
		logger: logger.With(slog.String("component", "state_store")),
	}
}

var _ store.StateStore = (*PostgresStateStore)(nil)

// WithTx implements store.StateStore.WithTx
func (s *PostgresStateStore) WithTx(tx *sql.Tx) store.StateStore {
	return &PostgresStateStore{
		db:     tx,
		logger: s.logger,
	}
}

func scanState(row rowScanner) (*domain.State, error) {
	var st domain.State
	var audit auditColumns
	dest := append([]any{&st.ID, &st.Code, &st.Name, &st.CountryID, &st.CountryName}, audit.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	st.Audit = audit.toDomain()
	return &st, nil
}

// List implements store.StateStore.List
func (s *PostgresStateStore) List(ctx context.Context) ([]*domain.State, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, stateSelect+` ORDER BY s.state_id`)
	if err != nil {
		log.Error("failed to query states", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	states := make([]*domain.State, 0)
	for rows.Next() {
		st, err := scanState(rows)
		if err != nil {
			log.Error("failed to scan state row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan state row: %w", err)
		}
		states = append(states, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating state rows: %w", err)
	}

	return states, nil
}

// GetByID implements store.StateStore.GetByID
func (s *PostgresStateStore) GetByID(ctx context.Context, id int64) (*domain.State, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	st, err := scanState(s.db.QueryRowContext(ctx, stateSelect+` WHERE s.state_id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("state not found", slog.Int64("state_id", id))
			return nil, store.ErrStateNotFound
		}
		log.Error("failed to get state by ID",
			slog.String("error", err.Error()),
			slog.Int64("state_id", id))
		return nil, MapError(err)
	}

	return st, nil
}

// Create implements store.StateStore.Create
// A missing country surfaces as store.ErrInvalidEntity through the foreign key.
func (s *PostgresStateStore) Create(ctx context.Context, state *domain.State) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO state (state_code, state_name, country_id, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING state_id
	`, state.Code, state.Name, state.CountryID, state.CreatedBy).Scan(&id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("state references a missing country",
				slog.Int64("country_id", state.CountryID))
		} else if !IsUniqueViolation(err) {
			log.Error("failed to create state",
				slog.String("error", err.Error()),
				slog.String("state_code", state.Code))
		}
		return 0, MapError(err)
	}

	log.Info("state created",
		slog.Int64("state_id", id),
		slog.String("state_code", state.Code))
	return id, nil
}

// Update implements store.StateStore.Update
func (s *PostgresStateStore) Update(ctx context.Context, state *domain.State) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		UPDATE state
		SET state_code = $1, state_name = $2, country_id = $3, updated_by = $4, updated_on = now()
		WHERE state_id = $5
	`, state.Code, state.Name, state.CountryID, state.UpdatedBy, state.ID)
	if err != nil {
		log.Error("failed to update state",
			slog.String("error", err.Error()),
			slog.Int64("state_id", state.ID))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrStateNotFound)
}

// Delete implements store.StateStore.Delete
func (s *PostgresStateStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM state WHERE state_id = $1`, id)
	if err != nil {
		log.Error("failed to delete state",
			slog.String("error", err.Error()),
			slog.Int64("state_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrStateNotFound)
}

// ExistsByID implements store.StateStore.ExistsByID
func (s *PostgresStateStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, s.db, `SELECT EXISTS (SELECT 1 FROM state WHERE state_id = $1)`, id)
}

// ExistsByCode implements store.StateStore.ExistsByCode
func (s *PostgresStateStore) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return exists(ctx, s.db, `SELECT EXISTS (SELECT 1 FROM state WHERE state_code = $1)`, code)
}

// ExistsByName implements store.StateStore.ExistsByName
func (s *PostgresStateStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	return exists(ctx, s.db, `SELECT EXISTS (SELECT 1 FROM state WHERE state_name = $1)`, name)
}
