package postgres

import (
	"database/sql"
	"time"

	"github.com/phrazzld/precise-api/internal/domain"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// auditColumns receives the four bookkeeping columns every master table carries.
type auditColumns struct {
	createdOn time.Time
	createdBy string
	updatedOn sql.NullTime
	updatedBy sql.NullString
}

func (a *auditColumns) dest() []any {
	return []any{&a.createdOn, &a.createdBy, &a.updatedOn, &a.updatedBy}
}

func (a *auditColumns) toDomain() domain.Audit {
	audit := domain.Audit{
		CreatedOn: a.createdOn,
		CreatedBy: a.createdBy,
	}
	if a.updatedOn.Valid {
		t := a.updatedOn.Time
		audit.UpdatedOn = &t
	}
	if a.updatedBy.Valid {
		s := a.updatedBy.String
		audit.UpdatedBy = &s
	}
	return audit
}
