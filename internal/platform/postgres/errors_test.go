package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/precise-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "nil", err: nil, wantErr: nil},
		{name: "no rows", err: sql.ErrNoRows, wantErr: store.ErrNotFound},
		{name: "unique", err: &pgconn.PgError{Code: uniqueViolationCode}, wantErr: store.ErrDuplicate},
		{name: "foreign key", err: &pgconn.PgError{Code: foreignKeyViolationCode}, wantErr: store.ErrInvalidEntity},
		{name: "check", err: &pgconn.PgError{Code: checkViolationCode}, wantErr: store.ErrInvalidEntity},
		{name: "not null", err: &pgconn.PgError{Code: notNullViolationCode}, wantErr: store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantErr)
		})
	}

	t.Run("unmapped errors pass through", func(t *testing.T) {
		plain := errors.New("boom")
		assert.Same(t, plain, MapError(plain))
	})
}

func TestCheckRowsAffected(t *testing.T) {
	assert.NoError(t, CheckRowsAffected(sqlmock.NewResult(0, 1), store.ErrCityNotFound))
	assert.ErrorIs(t, CheckRowsAffected(sqlmock.NewResult(0, 0), store.ErrCityNotFound), store.ErrCityNotFound)
	assert.ErrorIs(t, CheckRowsAffected(sqlmock.NewResult(0, 0), nil), store.ErrNotFound)
	assert.Error(t, CheckRowsAffected(sqlmock.NewErrorResult(errors.New("driver")), nil))
	assert.Error(t, CheckRowsAffected(nil, nil))
}
