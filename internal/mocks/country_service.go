package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/service"
)

// MockCountryService implements service.CountryService for testing.
// Unset function fields return zero values.
type MockCountryService struct {
	ListFn       func(ctx context.Context) ([]*domain.Country, error)
	GetFn        func(ctx context.Context, id int64) (*domain.Country, error)
	CreateFn     func(ctx context.Context, country *domain.Country) (int64, error)
	UpdateFn     func(ctx context.Context, country *domain.Country, reason domain.AuditReason) error
	DeleteFn     func(ctx context.Context, id int64, reason domain.AuditReason) error
	CodeExistsFn func(ctx context.Context, code string) (bool, error)
	NameExistsFn func(ctx context.Context, name string) (bool, error)

	mu      sync.Mutex
	reasons []domain.AuditReason
}

var _ service.CountryService = (*MockCountryService)(nil)

// Reasons returns every reason passed to Update or Delete, in call order.
func (m *MockCountryService) Reasons() []domain.AuditReason {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.AuditReason(nil), m.reasons...)
}

func (m *MockCountryService) record(reason domain.AuditReason) {
	m.mu.Lock()
	m.reasons = append(m.reasons, reason)
	m.mu.Unlock()
}

// List implements the service.CountryService interface.
func (m *MockCountryService) List(ctx context.Context) ([]*domain.Country, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

// Get implements the service.CountryService interface.
func (m *MockCountryService) Get(ctx context.Context, id int64) (*domain.Country, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

// Create implements the service.CountryService interface.
func (m *MockCountryService) Create(ctx context.Context, country *domain.Country) (int64, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, country)
	}
	return 0, nil
}

// Update implements the service.CountryService interface.
func (m *MockCountryService) Update(ctx context.Context, country *domain.Country, reason domain.AuditReason) error {
	m.record(reason)
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, country, reason)
	}
	return nil
}

// Delete implements the service.CountryService interface.
func (m *MockCountryService) Delete(ctx context.Context, id int64, reason domain.AuditReason) error {
	m.record(reason)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, reason)
	}
	return nil
}

// CodeExists implements the service.CountryService interface.
func (m *MockCountryService) CodeExists(ctx context.Context, code string) (bool, error) {
	if m.CodeExistsFn != nil {
		return m.CodeExistsFn(ctx, code)
	}
	return false, nil
}

// NameExists implements the service.CountryService interface.
func (m *MockCountryService) NameExists(ctx context.Context, name string) (bool, error) {
	if m.NameExistsFn != nil {
		return m.NameExistsFn(ctx, name)
	}
	return false, nil
}
