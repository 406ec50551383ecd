// Package store provides abstractions and implementations for data persistence
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/precise-api/internal/platform/logger"
)

// TxFn is a function that executes within a database transaction.
// It receives the context and a transaction, and returns an error if the operation fails.
// The transaction is committed if the function returns nil, or rolled back if it returns an error.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction executes the given function within a database transaction.
//
// A failure to begin is returned wrapped in ErrBeginTransaction and fn is never called.
// If fn returns an error the transaction is rolled back and fn's error is returned unchanged.
// A failed rollback is logged but never replaces fn's error.
// A failed commit is returned wrapped in ErrCommitTransaction.
// Panics inside fn roll the transaction back and are re-raised.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", ErrBeginTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			if txErr := tx.Rollback(); txErr != nil {
				log.Error("failed to roll back transaction after panic",
					slog.String("error", txErr.Error()),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back transaction after panic",
					slog.Any("panic", p))
			}
			// ALLOW-PANIC: Propagating caught panic from transaction
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		rollback(ctx, log, tx, err)
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", ErrCommitTransaction, err)
	}

	log.Debug("transaction committed successfully")
	return nil
}

// rollback is best effort: its own failure is not actionable by the caller.
func rollback(ctx context.Context, log *slog.Logger, tx *sql.Tx, cause error) {
	rollbackErr := tx.Rollback()
	switch {
	case rollbackErr == nil:
		log.Debug("rolled back transaction due to error",
			slog.String("error", cause.Error()))
	case errors.Is(rollbackErr, sql.ErrTxDone) && ctx.Err() != nil:
		// database/sql already rolled back when the context was cancelled.
		log.Debug("transaction already rolled back by cancelled context",
			slog.String("error", cause.Error()))
	default:
		log.Error("failed to roll back transaction",
			slog.String("rollback_error", rollbackErr.Error()),
			slog.String("original_error", cause.Error()))
	}
}
