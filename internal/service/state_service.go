package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/platform/logger"
	"github.com/phrazzld/precise-api/internal/store"
)

// StateService provides state master-data operations.
type StateService interface {
	List(ctx context.Context) ([]*domain.State, error)
	Get(ctx context.Context, id int64) (*domain.State, error)

	// Create inserts the state after checking that its country exists.
	Create(ctx context.Context, state *domain.State) (int64, error)

	// Update rewrites the state and records reason in the same transaction.
	// The target country is checked on that transaction too.
	Update(ctx context.Context, state *domain.State, reason domain.AuditReason) error

	Delete(ctx context.Context, id int64, reason domain.AuditReason) error
	CodeExists(ctx context.Context, code string) (bool, error)
	NameExists(ctx context.Context, name string) (bool, error)
}

type stateServiceImpl struct {
	states    store.StateStore
	countries store.CountryStore
	mutator   *AuditedMutator
	logger    *slog.Logger
}

// NewStateService creates a new StateService.
func NewStateService(
	states store.StateStore,
	countries store.CountryStore,
	mutator *AuditedMutator,
	logger *slog.Logger,
) (StateService, error) {
	if states == nil {
		return nil, domain.NewValidationError("states", "cannot be nil", domain.ErrValidation)
	}
	if countries == nil {
		return nil, domain.NewValidationError("countries", "cannot be nil", domain.ErrValidation)
	}
	if mutator == nil {
		return nil, domain.NewValidationError("mutator", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &stateServiceImpl{
		states:    states,
		countries: countries,
		mutator:   mutator,
		logger:    logger.With(slog.String("component", "state_service")),
	}, nil
}

// missingCountry is the validation error for a country_id that does not exist.
func missingCountry() error {
	return domain.NewValidationError("country_id", "does not exist", domain.ErrValidation)
}

func (s *stateServiceImpl) List(ctx context.Context) ([]*domain.State, error) {
	states, err := s.states.List(ctx)
	if err != nil {
		return nil, NewServiceError(EntityState, "list", "failed to list states", err)
	}
	return states, nil
}

func (s *stateServiceImpl) Get(ctx context.Context, id int64) (*domain.State, error) {
	state, err := s.states.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, NewServiceError(EntityState, "get", "failed to get state", err)
	}
	return state, nil
}

func (s *stateServiceImpl) Create(ctx context.Context, state *domain.State) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	found, err := s.countries.ExistsByID(ctx, state.CountryID)
	if err != nil {
		return 0, NewServiceError(EntityState, "create", "failed to check country", err)
	}
	if !found {
		log.Debug("state references a missing country", slog.Int64("country_id", state.CountryID))
		return 0, missingCountry()
	}

	id, err := s.states.Create(ctx, state)
	if err != nil {
		if store.IsDuplicateError(err) {
			return 0, err
		}
		return 0, NewServiceError(EntityState, "create", "failed to create state", err)
	}
	return id, nil
}

func (s *stateServiceImpl) Update(ctx context.Context, state *domain.State, reason domain.AuditReason) error {
	return s.mutator.Run(ctx, EntityState, reason, func(ctx context.Context, tx *sql.Tx) error {
		found, err := s.countries.WithTx(tx).ExistsByID(ctx, state.CountryID)
		if err != nil {
			return err
		}
		if !found {
			return missingCountry()
		}
		return s.states.WithTx(tx).Update(ctx, state)
	})
}

func (s *stateServiceImpl) Delete(ctx context.Context, id int64, reason domain.AuditReason) error {
	return s.mutator.Run(ctx, EntityState, reason, func(ctx context.Context, tx *sql.Tx) error {
		return s.states.WithTx(tx).Delete(ctx, id)
	})
}

func (s *stateServiceImpl) CodeExists(ctx context.Context, code string) (bool, error) {
	found, err := s.states.ExistsByCode(ctx, code)
	if err != nil {
		return false, NewServiceError(EntityState, "exists", "failed to check state code", err)
	}
	return found, nil
}

func (s *stateServiceImpl) NameExists(ctx context.Context, name string) (bool, error) {
	found, err := s.states.ExistsByName(ctx, name)
	if err != nil {
		return false, NewServiceError(EntityState, "exists", "failed to check state name", err)
	}
	return found, nil
}
