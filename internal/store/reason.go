package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/precise-api/internal/domain"
)

// ReasonStore records audit reasons.
type ReasonStore interface {
	// Record attaches reason to the current transaction so that triggers on the
	// mutated tables can copy it into the audit trail. It must be called on a
	// store returned by WithTx; the recorded reason disappears with the transaction.
	Record(ctx context.Context, reason domain.AuditReason) error

	// WithTx returns a ReasonStore bound to tx.
	WithTx(tx *sql.Tx) ReasonStore
}
