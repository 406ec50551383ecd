package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/precise-api/internal/domain"
)

// CountryStore defines the interface for country persistence.
type CountryStore interface {
	// List returns every country ordered by id.
	List(ctx context.Context) ([]*domain.Country, error)

	// GetByID returns ErrCountryNotFound if the country does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Country, error)

	// Create inserts the country and returns its generated id.
	// Returns ErrDuplicate if the code is already taken.
	Create(ctx context.Context, country *domain.Country) (int64, error)

	// Update rewrites code, name and updated_by of country.ID.
	// Returns ErrCountryNotFound when no row was affected.
	Update(ctx context.Context, country *domain.Country) error

	// Delete removes the country. Returns ErrCountryNotFound when no row was affected.
	Delete(ctx context.Context, id int64) error

	// ExistsByID reports whether a country with id exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// ExistsByCode reports whether a country with code exists.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// ExistsByName reports whether a country with name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// WithTx returns a new CountryStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CountryStore
}

// StateStore defines the interface for state persistence.
type StateStore interface {
	// List returns every state with its country name.
	List(ctx context.Context) ([]*domain.State, error)

	// GetByID returns ErrStateNotFound if the state does not exist.
	GetByID(ctx context.Context, id int64) (*domain.State, error)

	// Create inserts the state and returns its generated id.
	// Returns ErrDuplicate if the code is taken and ErrInvalidEntity if the country is missing.
	Create(ctx context.Context, state *domain.State) (int64, error)

	// Update rewrites code, name, country and updated_by of state.ID.
	// Returns ErrStateNotFound when no row was affected.
	Update(ctx context.Context, state *domain.State) error

	// Delete removes the state. Returns ErrStateNotFound when no row was affected.
	Delete(ctx context.Context, id int64) error

	// ExistsByID reports whether a state with id exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// ExistsByCode reports whether a state with code exists.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// ExistsByName reports whether a state with name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// WithTx returns a new StateStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) StateStore
}

// CityStore defines the interface for city persistence.
type CityStore interface {
	// List returns every city with its state and country names.
	List(ctx context.Context) ([]*domain.City, error)

	// GetByID returns ErrCityNotFound if the city does not exist.
	GetByID(ctx context.Context, id int64) (*domain.City, error)

	// Create inserts the city and returns its generated id.
	// Returns ErrDuplicate if the code is taken and ErrInvalidEntity if the state is missing.
	Create(ctx context.Context, city *domain.City) (int64, error)

	// Update rewrites code, name and updated_by of city.ID.
	// Returns ErrCityNotFound when no row was affected.
	Update(ctx context.Context, city *domain.City) error

	// Delete removes the city. Returns ErrCityNotFound when no row was affected.
	Delete(ctx context.Context, id int64) error

	// ExistsByCode reports whether a city with code exists.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// ExistsByName reports whether a city with name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// WithTx returns a new CityStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CityStore
}
