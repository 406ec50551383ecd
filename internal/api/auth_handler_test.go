package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/mocks"
	"github.com/phrazzld/precise-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("p1", bcrypt.MinCost)
	require.NoError(t, err)
	users := mocks.NewMockUserStore(&domain.User{UserID: "u1", HashedPassword: hash})

	jwtService := &mocks.MockJWTService{
		GenerateTokenFn: func(ctx context.Context, userID string) (string, error) {
			return "token-for-" + userID, nil
		},
	}

	tests := []struct {
		name       string
		body       string
		jwt        *mocks.MockJWTService
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"user_id":"u1","password":"p1"}`,
			jwt:        jwtService,
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok","message":"Success Login","token":"token-for-u1"}`,
		},
		{
			name:       "wrong password",
			body:       `{"user_id":"u1","password":"nope"}`,
			jwt:        jwtService,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":401,"message":"Invalid user id or password"}`,
		},
		{
			name:       "unknown user",
			body:       `{"user_id":"ghost","password":"p1"}`,
			jwt:        jwtService,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":401,"message":"Invalid user id or password"}`,
		},
		{
			name:       "missing password",
			body:       `{"user_id":"u1"}`,
			jwt:        jwtService,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":400,"message":"password is required"}`,
		},
		{
			name: "signing failure",
			body: `{"user_id":"u1","password":"p1"}`,
			jwt: &mocks.MockJWTService{
				Err: errors.New("signing key unavailable"),
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":500,"message":"Failed to generate authentication token"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewAuthHandler(users, tt.jwt, auth.NewBcryptVerifier(), nil)
			rec := httptest.NewRecorder()
			h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAuthHandler_Login_StoreFailure(t *testing.T) {
	t.Parallel()

	users := &mocks.MockUserStore{Err: errors.New("db down")}
	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}
	h := NewAuthHandler(users, &mocks.MockJWTService{}, verifier, nil)

	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"user_id":"u1","password":"p1"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Zero(t, verifier.CallCount())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, rec.Body.String(), "db down")
}
