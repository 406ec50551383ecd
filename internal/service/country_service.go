package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/platform/logger"
	"github.com/phrazzld/precise-api/internal/store"
)

// Entity names used in errors, logs and metrics labels.
const (
	EntityCountry = "country"
	EntityState   = "state"
	EntityCity    = "city"
)

// CountryService provides country master-data operations.
type CountryService interface {
	List(ctx context.Context) ([]*domain.Country, error)
	Get(ctx context.Context, id int64) (*domain.Country, error)
	Create(ctx context.Context, country *domain.Country) (int64, error)

	// Update rewrites the country and records reason in the same transaction.
	Update(ctx context.Context, country *domain.Country, reason domain.AuditReason) error

	// Delete removes the country and records reason in the same transaction.
	Delete(ctx context.Context, id int64, reason domain.AuditReason) error

	CodeExists(ctx context.Context, code string) (bool, error)
	NameExists(ctx context.Context, name string) (bool, error)
}

type countryServiceImpl struct {
	countries store.CountryStore
	mutator   *AuditedMutator
	logger    *slog.Logger
}

// NewCountryService creates a new CountryService.
// It returns an error if any of the required dependencies are nil.
func NewCountryService(
	countries store.CountryStore,
	mutator *AuditedMutator,
	logger *slog.Logger,
) (CountryService, error) {
	if countries == nil {
		return nil, domain.NewValidationError("countries", "cannot be nil", domain.ErrValidation)
	}
	if mutator == nil {
		return nil, domain.NewValidationError("mutator", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &countryServiceImpl{
		countries: countries,
		mutator:   mutator,
		logger:    logger.With(slog.String("component", "country_service")),
	}, nil
}

func (s *countryServiceImpl) List(ctx context.Context) ([]*domain.Country, error) {
	countries, err := s.countries.List(ctx)
	if err != nil {
		return nil, NewServiceError(EntityCountry, "list", "failed to list countries", err)
	}
	return countries, nil
}

func (s *countryServiceImpl) Get(ctx context.Context, id int64) (*domain.Country, error) {
	country, err := s.countries.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, NewServiceError(EntityCountry, "get", "failed to get country", err)
	}
	return country, nil
}

func (s *countryServiceImpl) Create(ctx context.Context, country *domain.Country) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := s.countries.Create(ctx, country)
	if err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("country code already exists", slog.String("country_code", country.Code))
			return 0, err
		}
		return 0, NewServiceError(EntityCountry, "create", "failed to create country", err)
	}
	return id, nil
}

func (s *countryServiceImpl) Update(ctx context.Context, country *domain.Country, reason domain.AuditReason) error {
	return s.mutator.Run(ctx, EntityCountry, reason, func(ctx context.Context, tx *sql.Tx) error {
		return s.countries.WithTx(tx).Update(ctx, country)
	})
}

func (s *countryServiceImpl) Delete(ctx context.Context, id int64, reason domain.AuditReason) error {
	return s.mutator.Run(ctx, EntityCountry, reason, func(ctx context.Context, tx *sql.Tx) error {
		return s.countries.WithTx(tx).Delete(ctx, id)
	})
}

func (s *countryServiceImpl) CodeExists(ctx context.Context, code string) (bool, error) {
	found, err := s.countries.ExistsByCode(ctx, code)
	if err != nil {
		return false, NewServiceError(EntityCountry, "exists", "failed to check country code", err)
	}
	return found, nil
}

func (s *countryServiceImpl) NameExists(ctx context.Context, name string) (bool, error) {
	found, err := s.countries.ExistsByName(ctx, name)
	if err != nil {
		return false, NewServiceError(EntityCountry, "exists", "failed to check country name", err)
	}
	return found, nil
}
