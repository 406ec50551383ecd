package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/platform/logger"
	"github.com/phrazzld/precise-api/internal/store"
)

// Setting names read back by the audit trigger in the migrations.
const (
	settingUserName = "precise.user_name"
	settingReason   = "precise.reason"
	settingAction   = "precise.action"
)

// The third set_config argument makes each value local to the current transaction.
const recordReasonQuery = `SELECT set_config($1, $2, true), set_config($3, $4, true), set_config($5, $6, true)`

// PostgresReasonStore implements store.ReasonStore with transaction-local settings.
type PostgresReasonStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReasonStore creates a new PostgreSQL implementation of the ReasonStore interface.
func NewPostgresReasonStore(db store.DBTX, logger *slog.Logger) *PostgresReasonStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReasonStore{
		db:     db,
		logger: logger.With(slog.String("component", "reason_store")),
	}
}

var _ store.ReasonStore = (*PostgresReasonStore)(nil)

// WithTx implements store.ReasonStore.WithTx
func (s *PostgresReasonStore) WithTx(tx *sql.Tx) store.ReasonStore {
	return &PostgresReasonStore{
		db:     tx,
		logger: s.logger,
	}
}

// Record implements store.ReasonStore.Record
// Outside a transaction the settings would vanish at the end of the statement,
// so Record is only meaningful on a store returned by WithTx.
func (s *PostgresReasonStore) Record(ctx context.Context, reason domain.AuditReason) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := reason.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, recordReasonQuery,
		settingUserName, reason.ActingUser,
		settingReason, reason.Text,
		settingAction, string(reason.Action),
	)
	if err != nil {
		log.Error("failed to record audit reason",
			slog.String("error", err.Error()),
			slog.String("action", string(reason.Action)))
		return fmt.Errorf("failed to record audit reason: %w", MapError(err))
	}

	log.Debug("audit reason recorded",
		slog.String("action", string(reason.Action)),
		slog.String("acting_user", reason.ActingUser))
	return nil
}
