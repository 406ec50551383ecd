package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/service"
)

// MockCityService implements service.CityService for testing.
// Unset function fields return zero values.
type MockCityService struct {
	ListFn       func(ctx context.Context) ([]*domain.City, error)
	GetFn        func(ctx context.Context, id int64) (*domain.City, error)
	CreateFn     func(ctx context.Context, city *domain.City) (int64, error)
	UpdateFn     func(ctx context.Context, city *domain.City, reason domain.AuditReason) error
	DeleteFn     func(ctx context.Context, id int64, reason domain.AuditReason) error
	CodeExistsFn func(ctx context.Context, code string) (bool, error)
	NameExistsFn func(ctx context.Context, name string) (bool, error)

	mu      sync.Mutex
	reasons []domain.AuditReason
}

var _ service.CityService = (*MockCityService)(nil)

// Reasons returns every reason passed to Update or Delete, in call order.
func (m *MockCityService) Reasons() []domain.AuditReason {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.AuditReason(nil), m.reasons...)
}

func (m *MockCityService) record(reason domain.AuditReason) {
	m.mu.Lock()
	m.reasons = append(m.reasons, reason)
	m.mu.Unlock()
}

// List implements the service.CityService interface.
func (m *MockCityService) List(ctx context.Context) ([]*domain.City, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

// Get implements the service.CityService interface.
func (m *MockCityService) Get(ctx context.Context, id int64) (*domain.City, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

// Create implements the service.CityService interface.
func (m *MockCityService) Create(ctx context.Context, city *domain.City) (int64, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, city)
	}
	return 0, nil
}

// Update implements the service.CityService interface.
func (m *MockCityService) Update(ctx context.Context, city *domain.City, reason domain.AuditReason) error {
	m.record(reason)
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, city, reason)
	}
	return nil
}

// Delete implements the service.CityService interface.
func (m *MockCityService) Delete(ctx context.Context, id int64, reason domain.AuditReason) error {
	m.record(reason)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, reason)
	}
	return nil
}

// CodeExists implements the service.CityService interface.
func (m *MockCityService) CodeExists(ctx context.Context, code string) (bool, error) {
	if m.CodeExistsFn != nil {
		return m.CodeExistsFn(ctx, code)
	}
	return false, nil
}

// NameExists implements the service.CityService interface.
func (m *MockCityService) NameExists(ctx context.Context, name string) (bool, error) {
	if m.NameExistsFn != nil {
		return m.NameExistsFn(ctx, name)
	}
	return false, nil
}
