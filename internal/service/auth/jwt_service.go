package auth

import (
	"context"
	"time"
)

// JWTService issues and validates the bearer tokens used by the API.
type JWTService interface {
	// GenerateToken creates a signed token whose subject is userID.
	GenerateToken(ctx context.Context, userID string) (string, error)

	// ValidateToken verifies signature and expiry and extracts the claims.
	// Every failure is reported as ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded claim set of a valid token. It lives for one request
// and is never persisted.
type Claims struct {
	// Subject is the user_id the token was issued to.
	Subject   string    `json:"sub"`
	ExpiresAt time.Time `json:"exp"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
