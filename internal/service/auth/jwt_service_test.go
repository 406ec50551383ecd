package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/precise-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

func newTestService(t *testing.T, secret string, now func() time.Time) JWTService {
	t.Helper()
	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: 60,
	}, WithTimeFunc(now))
	require.NoError(t, err)
	return svc
}

func at(tm time.Time) func() time.Time {
	return func() time.Time { return tm }
}

func TestNewJWTService_RejectsWeakSecret(t *testing.T) {
	svc, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrWeakSecret)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, testSecret, at(fixedTime))

	token, err := svc.GenerateToken(context.Background(), "u1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)

	second, err := svc.GenerateToken(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotEqual(t, token, second, "each token carries its own jti")
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	issue := func(secret string, method jwt.SigningMethod, claims jwt.Claims) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}
	valid := jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Minute)),
	}

	tests := []struct {
		name    string
		token   string
		now     time.Time
		wantErr bool
	}{
		{
			name:  "valid token",
			token: issue(testSecret, jwt.SigningMethodHS256, valid),
			now:   fixedTime,
		},
		{
			name:    "expired token",
			token:   issue(testSecret, jwt.SigningMethodHS256, valid),
			now:     fixedTime.Add(2 * time.Minute),
			wantErr: true,
		},
		{
			name:    "expiry equal to now is rejected",
			token:   issue(testSecret, jwt.SigningMethodHS256, valid),
			now:     fixedTime.Add(time.Minute),
			wantErr: true,
		},
		{
			name:    "wrong secret",
			token:   issue(wrongSecret, jwt.SigningMethodHS256, valid),
			now:     fixedTime,
			wantErr: true,
		},
		{
			name:    "wrong algorithm",
			token:   issue(testSecret, jwt.SigningMethodHS512, valid),
			now:     fixedTime,
			wantErr: true,
		},
		{
			name:    "missing exp",
			token:   issue(testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u1"}),
			now:     fixedTime,
			wantErr: true,
		},
		{
			name:    "malformed token",
			token:   "this.is.not.a.valid.jwt.token",
			now:     fixedTime,
			wantErr: true,
		},
		{
			name:    "empty token",
			token:   "",
			now:     fixedTime,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestService(t, testSecret, at(tt.now))
			claims, err := svc.ValidateToken(context.Background(), tt.token)

			if tt.wantErr {
				// Every failure collapses to the same error.
				assert.Equal(t, ErrInvalidToken, err)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", claims.Subject)
		})
	}
}

func TestValidateToken_AlgNoneRejected(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc := newTestService(t, testSecret, time.Now)
	_, err = svc.ValidateToken(context.Background(), token)
	assert.Equal(t, ErrInvalidToken, err)
}
