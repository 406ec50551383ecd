package store

import (
	"context"

	"github.com/phrazzld/precise-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Users are provisioned out of band; the API only reads them to log in.
type UserStore interface {
	// GetByUserID retrieves a user by login name.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUserID(ctx context.Context, userID string) (*domain.User, error)
}
