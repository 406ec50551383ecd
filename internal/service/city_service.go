package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/platform/logger"
	"github.com/phrazzld/precise-api/internal/store"
)

// CityService provides city master-data operations.
type CityService interface {
	List(ctx context.Context) ([]*domain.City, error)
	Get(ctx context.Context, id int64) (*domain.City, error)

	// Create inserts the city after checking that its state exists.
	Create(ctx context.Context, city *domain.City) (int64, error)

	Update(ctx context.Context, city *domain.City, reason domain.AuditReason) error
	Delete(ctx context.Context, id int64, reason domain.AuditReason) error
	CodeExists(ctx context.Context, code string) (bool, error)
	NameExists(ctx context.Context, name string) (bool, error)
}

type cityServiceImpl struct {
	cities  store.CityStore
	states  store.StateStore
	mutator *AuditedMutator
	logger  *slog.Logger
}

// NewCityService creates a new CityService.
func NewCityService(
	cities store.CityStore,
	states store.StateStore,
	mutator *AuditedMutator,
	logger *slog.Logger,
) (CityService, error) {
	if cities == nil {
		return nil, domain.NewValidationError("cities", "cannot be nil", domain.ErrValidation)
	}
	if states == nil {
		return nil, domain.NewValidationError("states", "cannot be nil", domain.ErrValidation)
	}
	if mutator == nil {
		return nil, domain.NewValidationError("mutator", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &cityServiceImpl{
		cities:  cities,
		states:  states,
		mutator: mutator,
		logger:  logger.With(slog.String("component", "city_service")),
	}, nil
}

func (s *cityServiceImpl) List(ctx context.Context) ([]*domain.City, error) {
	cities, err := s.cities.List(ctx)
	if err != nil {
		return nil, NewServiceError(EntityCity, "list", "failed to list cities", err)
	}
	return cities, nil
}

func (s *cityServiceImpl) Get(ctx context.Context, id int64) (*domain.City, error) {
	city, err := s.cities.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, NewServiceError(EntityCity, "get", "failed to get city", err)
	}
	return city, nil
}

func (s *cityServiceImpl) Create(ctx context.Context, city *domain.City) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	found, err := s.states.ExistsByID(ctx, city.StateID)
	if err != nil {
		return 0, NewServiceError(EntityCity, "create", "failed to check state", err)
	}
	if !found {
		log.Debug("city references a missing state", slog.Int64("state_id", city.StateID))
		return 0, domain.NewValidationError("state_id", "does not exist", domain.ErrValidation)
	}

	id, err := s.cities.Create(ctx, city)
	if err != nil {
		if store.IsDuplicateError(err) {
			return 0, err
		}
		return 0, NewServiceError(EntityCity, "create", "failed to create city", err)
	}
	return id, nil
}

func (s *cityServiceImpl) Update(ctx context.Context, city *domain.City, reason domain.AuditReason) error {
	return s.mutator.Run(ctx, EntityCity, reason, func(ctx context.Context, tx *sql.Tx) error {
		return s.cities.WithTx(tx).Update(ctx, city)
	})
}

func (s *cityServiceImpl) Delete(ctx context.Context, id int64, reason domain.AuditReason) error {
	return s.mutator.Run(ctx, EntityCity, reason, func(ctx context.Context, tx *sql.Tx) error {
		return s.cities.WithTx(tx).Delete(ctx, id)
	})
}

func (s *cityServiceImpl) CodeExists(ctx context.Context, code string) (bool, error) {
	found, err := s.cities.ExistsByCode(ctx, code)
	if err != nil {
		return false, NewServiceError(EntityCity, "exists", "failed to check city code", err)
	}
	return found, nil
}

func (s *cityServiceImpl) NameExists(ctx context.Context, name string) (bool, error) {
	found, err := s.cities.ExistsByName(ctx, name)
	if err != nil {
		return false, NewServiceError(EntityCity, "exists", "failed to check city name", err)
	}
	return found, nil
}
