package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/platform/logger"
	"github.com/phrazzld/precise-api/internal/platform/metrics"
	"github.com/phrazzld/precise-api/internal/redact"
	"github.com/phrazzld/precise-api/internal/store"
)

// Mutation changes master data on the transaction it is given.
type Mutation func(ctx context.Context, tx *sql.Tx) error

// MutationObserver receives the outcome of every audited mutation.
type MutationObserver interface {
	ObserveMutation(entity, action, outcome string, start time.Time)
}

type noopObserver struct{}

func (noopObserver) ObserveMutation(string, string, string, time.Time) {}

// AuditedMutator runs mutations together with their audit reason in one transaction:
//
//	begin -> record reason -> mutate -> commit
//
// A failure at any step rolls back both the reason and the mutation.
// No in-process locking is done; conflicting writers are serialised by the database.
type AuditedMutator struct {
	db       *sql.DB
	reasons  store.ReasonStore
	observer MutationObserver
	logger   *slog.Logger
}

// NewAuditedMutator creates an AuditedMutator. observer may be nil.
func NewAuditedMutator(
	db *sql.DB,
	reasons store.ReasonStore,
	observer MutationObserver,
	logger *slog.Logger,
) (*AuditedMutator, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if reasons == nil {
		return nil, domain.NewValidationError("reasons", "cannot be nil", domain.ErrValidation)
	}
	if observer == nil {
		observer = noopObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AuditedMutator{
		db:       db,
		reasons:  reasons,
		observer: observer,
		logger:   logger.With(slog.String("component", "audited_mutator")),
	}, nil
}

// Run records reason and applies mutate atomically.
//
// Errors returned:
//   - validation errors from reason.Validate, before any transaction is opened;
//   - store not-found errors (zero rows affected) unchanged;
//   - store.ErrDuplicate, store.ErrInvalidEntity and validation errors raised
//     by mutate unchanged;
//   - ErrCommitFailed when the commit fails;
//   - ErrMutationFailed for everything else.
func (m *AuditedMutator) Run(ctx context.Context, entity string, reason domain.AuditReason, mutate Mutation) error {
	log := logger.FromContextOrDefault(ctx, m.logger).With(
		slog.String("entity", entity),
		slog.String("action", string(reason.Action)),
	)

	if err := reason.Validate(); err != nil {
		return err
	}

	start := time.Now()
	err := store.RunInTransaction(ctx, m.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := m.reasons.WithTx(tx).Record(ctx, reason); err != nil {
			return fmt.Errorf("%w: %v", ErrMutationFailed, err)
		}
		return mutate(ctx, tx)
	})

	outcome, result := classify(err)
	m.observer.ObserveMutation(entity, string(reason.Action), outcome, start)

	switch outcome {
	case metrics.OutcomeCommitted:
		log.Info("audited mutation committed", slog.String("acting_user", reason.ActingUser))
	case metrics.OutcomeNotFound:
		log.Debug("audited mutation matched no rows")
	default:
		log.Error("audited mutation failed", slog.String("error", redact.Error(err)))
	}

	return result
}

func classify(err error) (string, error) {
	switch {
	case err == nil:
		return metrics.OutcomeCommitted, nil
	case store.IsNotFoundError(err):
		return metrics.OutcomeNotFound, err
	case errors.Is(err, store.ErrCommitTransaction):
		return metrics.OutcomeFailed, fmt.Errorf("%w: %v", ErrCommitFailed, err)
	case errors.Is(err, ErrMutationFailed),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return metrics.OutcomeFailed, err
	default:
		return metrics.OutcomeFailed, fmt.Errorf("%w: %v", ErrMutationFailed, err)
	}
}
