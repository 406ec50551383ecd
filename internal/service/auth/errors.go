package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken is returned for every token that fails validation: malformed,
	// wrong signature, wrong algorithm, missing or past expiry. Callers see one
	// error so a rejected token reveals nothing about why it was rejected.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWeakSecret is returned when the configured signing secret is too short.
	ErrWeakSecret = errors.New("jwt secret must be at least 32 characters")
)
