package mocks

import (
	"context"

	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/store"
)

// MockUserStore implements store.UserStore over an in-memory map.
type MockUserStore struct {
	GetByUserIDFn func(ctx context.Context, userID string) (*domain.User, error)

	Users map[string]*domain.User
	Err   error
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a store holding users keyed by UserID.
func NewMockUserStore(users ...*domain.User) *MockUserStore {
	m := &MockUserStore{Users: make(map[string]*domain.User, len(users))}
	for _, u := range users {
		m.Users[u.UserID] = u
	}
	return m
}

// GetByUserID implements the store.UserStore interface.
func (m *MockUserStore) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	user, ok := m.Users[userID]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}
