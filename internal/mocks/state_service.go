package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/service"
)

// MockStateService implements service.StateService for testing.
// Unset function fields return zero values.
type MockStateService struct {
	ListFn       func(ctx context.Context) ([]*domain.State, error)
	GetFn        func(ctx context.Context, id int64) (*domain.State, error)
	CreateFn     func(ctx context.Context, state *domain.State) (int64, error)
	UpdateFn     func(ctx context.Context, state *domain.State, reason domain.AuditReason) error
	DeleteFn     func(ctx context.Context, id int64, reason domain.AuditReason) error
	CodeExistsFn func(ctx context.Context, code string) (bool, error)
	NameExistsFn func(ctx context.Context, name string) (bool, error)

	mu      sync.Mutex
	reasons []domain.AuditReason
}

var _ service.StateService = (*MockStateService)(nil)

// Reasons returns every reason passed to Update or Delete, in call order.
func (m *MockStateService) Reasons() []domain.AuditReason {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.AuditReason(nil), m.reasons...)
}

func (m *MockStateService) record(reason domain.AuditReason) {
	m.mu.Lock()
	m.reasons = append(m.reasons, reason)
	m.mu.Unlock()
}

// List implements the service.StateService interface.
func (m *MockStateService) List(ctx context.Context) ([]*domain.State, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

// Get implements the service.StateService interface.
func (m *MockStateService) Get(ctx context.Context, id int64) (*domain.State, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

// Create implements the service.StateService interface.
func (m *MockStateService) Create(ctx context.Context, state *domain.State) (int64, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, state)
	}
	return 0, nil
}

// Update implements the service.StateService interface.
func (m *MockStateService) Update(ctx context.Context, state *domain.State, reason domain.AuditReason) error {
	m.record(reason)
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, state, reason)
	}
	return nil
}

// Delete implements the service.StateService interface.
func (m *MockStateService) Delete(ctx context.Context, id int64, reason domain.AuditReason) error {
	m.record(reason)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, reason)
	}
	return nil
}

// CodeExists implements the service.StateService interface.
func (m *MockStateService) CodeExists(ctx context.Context, code string) (bool, error) {
	if m.CodeExistsFn != nil {
		return m.CodeExistsFn(ctx, code)
	}
	return false, nil
}

// NameExists implements the service.StateService interface.
func (m *MockStateService) NameExists(ctx context.Context, name string) (bool, error) {
	if m.NameExistsFn != nil {
		return m.NameExistsFn(ctx, name)
	}
	return false, nil
}
