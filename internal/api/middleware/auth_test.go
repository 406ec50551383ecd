package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/precise-api/internal/config"
	"github.com/phrazzld/precise-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "middleware-secret-long-enough-for-hs256"
	otherSecret = "another-secret-that-is-also-long-enough"
)

func newJWT(t *testing.T, secret string, now time.Time) auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: 60,
	}, auth.WithTimeFunc(func() time.Time { return now }))
	require.NoError(t, err)
	return svc
}

func TestAuthGate_Authenticate(t *testing.T) {
	t.Parallel()

	now := time.Now()
	gateJWT := newJWT(t, testSecret, now)

	valid, err := gateJWT.GenerateToken(context.Background(), "admin")
	require.NoError(t, err)
	forged, err := newJWT(t, otherSecret, now).GenerateToken(context.Background(), "admin")
	require.NoError(t, err)
	expired, err := newJWT(t, testSecret, now.Add(-2*time.Hour)).GenerateToken(context.Background(), "admin")
	require.NoError(t, err)

	tests := []struct {
		name        string
		path        string
		header      string
		wantStatus  int
		wantBody    string
		wantInvoked bool
		wantSubject string
	}{
		{
			name:        "allow-listed login without header",
			path:        "/precise/api/auth/login",
			wantStatus:  http.StatusOK,
			wantInvoked: true,
		},
		{
			name:       "allow-list match is exact",
			path:       "/precise/api/auth/login/extra",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":"error","message":"no access to endpoint"}`,
		},
		{
			name:       "missing header",
			path:       "/precise/api/master/countries",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":"error","message":"no access to endpoint"}`,
		},
		{
			name:       "wrong scheme",
			path:       "/precise/api/master/countries",
			header:     "Basic " + valid,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":"error","message":"no access to endpoint"}`,
		},
		{
			name:       "empty bearer",
			path:       "/precise/api/master/countries",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":"error","message":"no access to endpoint"}`,
		},
		{
			name:       "signed with another secret",
			path:       "/precise/api/master/countries",
			header:     "Bearer " + forged,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":"error","message":"invalid token"}`,
		},
		{
			name:       "expired",
			path:       "/precise/api/master/countries",
			header:     "Bearer " + expired,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":"error","message":"invalid token"}`,
		},
		{
			name:       "garbage",
			path:       "/precise/api/master/countries",
			header:     "Bearer not.a.token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":"error","message":"invalid token"}`,
		},
		{
			name:        "valid token",
			path:        "/precise/api/master/countries",
			header:      "Bearer " + valid,
			wantStatus:  http.StatusOK,
			wantInvoked: true,
			wantSubject: "admin",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gate := NewAuthGate(gateJWT, []string{"/precise/api/auth/login", "/precise/api/health"}, nil)

			invoked := 0
			var subject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				invoked++
				subject = ActingUser(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			gate.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantInvoked {
				assert.Equal(t, 1, invoked)
			} else {
				assert.Zero(t, invoked, "handler must not run for rejected requests")
			}
			assert.Equal(t, tt.wantSubject, subject)
		})
	}
}

func TestClaimsFromContext_Empty(t *testing.T) {
	claims, ok := ClaimsFromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, claims)
	assert.Empty(t, ActingUser(context.Background()))
}
