package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/platform/postgres"
	"github.com/phrazzld/precise-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type services struct {
	countries CountryService
	states    StateService
	cities    CityService
	mock      sqlmock.Sqlmock
}

func newTestServices(t *testing.T) services {
	t.Helper()
	m, mock, _, db := newTestMutator(t)

	countryStore := postgres.NewPostgresCountryStore(db, nil)
	stateStore := postgres.NewPostgresStateStore(db, nil)
	cityStore := postgres.NewPostgresCityStore(db, nil)

	countries, err := NewCountryService(countryStore, m, nil)
	require.NoError(t, err)
	states, err := NewStateService(stateStore, countryStore, m, nil)
	require.NoError(t, err)
	cities, err := NewCityService(cityStore, stateStore, m, nil)
	require.NoError(t, err)

	return services{countries: countries, states: states, cities: cities, mock: mock}
}

func existsRow(found bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(found)
}

func TestCountryService_UpdateRunsAuditedMutation(t *testing.T) {
	s := newTestServices(t)
	editor := "editor"

	s.mock.ExpectBegin()
	expectReason(s.mock, editor, "rename", "update")
	s.mock.ExpectExec("UPDATE country").
		WithArgs("IDN", "Indonesia", editor, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	err := s.countries.Update(context.Background(), &domain.Country{
		ID: 5, Code: "IDN", Name: "Indonesia", Audit: domain.Audit{UpdatedBy: &editor},
	}, domain.NewUpdateReason(editor, "rename"))

	require.NoError(t, err)
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestCountryService_DeleteMissingIsNotFound(t *testing.T) {
	s := newTestServices(t)

	s.mock.ExpectBegin()
	expectReason(s.mock, "admin", "obsolete", "delete")
	s.mock.ExpectExec("DELETE FROM country").WithArgs(int64(77)).WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectRollback()

	err := s.countries.Delete(context.Background(), 77, domain.NewDeleteReason("admin", "obsolete"))
	assert.ErrorIs(t, err, store.ErrCountryNotFound)
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestCountryService_CreateDuplicatePassesThrough(t *testing.T) {
	s := newTestServices(t)

	s.mock.ExpectQuery("INSERT INTO country").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := s.countries.Create(context.Background(), &domain.Country{
		Code: "IDN", Name: "Indonesia", Audit: domain.Audit{CreatedBy: "admin"},
	})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestCountryService_ListWrapsStoreErrors(t *testing.T) {
	s := newTestServices(t)
	s.mock.ExpectQuery("FROM country").WillReturnError(errors.New("connection refused"))

	_, err := s.countries.List(context.Background())
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, EntityCountry, svcErr.Entity)
	assert.Equal(t, "list", svcErr.Operation)
}

func TestStateService_Create(t *testing.T) {
	t.Run("missing country is a validation error", func(t *testing.T) {
		s := newTestServices(t)
		s.mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM country WHERE country_id").
			WithArgs(int64(9)).
			WillReturnRows(existsRow(false))

		_, err := s.states.Create(context.Background(), &domain.State{
			Code: "JKT", Name: "Jakarta", CountryID: 9, Audit: domain.Audit{CreatedBy: "admin"},
		})

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "country_id", vErr.Field)
		assert.NoError(t, s.mock.ExpectationsWereMet())
	})

	t.Run("existing country inserts", func(t *testing.T) {
		s := newTestServices(t)
		s.mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM country WHERE country_id").
			WithArgs(int64(1)).
			WillReturnRows(existsRow(true))
		s.mock.ExpectQuery("INSERT INTO state").
			WithArgs("JKT", "Jakarta", int64(1), "admin").
			WillReturnRows(sqlmock.NewRows([]string{"state_id"}).AddRow(12))

		id, err := s.states.Create(context.Background(), &domain.State{
			Code: "JKT", Name: "Jakarta", CountryID: 1, Audit: domain.Audit{CreatedBy: "admin"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(12), id)
		assert.NoError(t, s.mock.ExpectationsWereMet())
	})
}

func TestStateService_UpdateChecksCountryInsideTransaction(t *testing.T) {
	s := newTestServices(t)
	editor := "editor"

	s.mock.ExpectBegin()
	expectReason(s.mock, editor, "move", "update")
	s.mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM country WHERE country_id").
		WithArgs(int64(404)).
		WillReturnRows(existsRow(false))
	s.mock.ExpectRollback()

	err := s.states.Update(context.Background(), &domain.State{
		ID: 3, Code: "JKT", Name: "Jakarta", CountryID: 404, Audit: domain.Audit{UpdatedBy: &editor},
	}, domain.NewUpdateReason(editor, "move"))

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestCityService_CreateRequiresState(t *testing.T) {
	s := newTestServices(t)
	s.mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM state WHERE state_id").
		WithArgs(int64(8)).
		WillReturnRows(existsRow(false))

	_, err := s.cities.Create(context.Background(), &domain.City{
		Code: "BDG", Name: "Bandung", StateID: 8, Audit: domain.Audit{CreatedBy: "admin"},
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "state_id", vErr.Field)
}

func TestCityService_CodeExists(t *testing.T) {
	s := newTestServices(t)
	s.mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM city WHERE city_code").
		WithArgs("BDG").
		WillReturnRows(existsRow(true))

	found, err := s.cities.CodeExists(context.Background(), "BDG")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestNewServices_RequireDependencies(t *testing.T) {
	_, err := NewCountryService(nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = NewStateService(nil, nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = NewCityService(nil, nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
