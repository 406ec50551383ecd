package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/precise-api/internal/api/shared"
	"github.com/phrazzld/precise-api/internal/platform/logger"
	"github.com/phrazzld/precise-api/internal/service/auth"
	"github.com/phrazzld/precise-api/internal/store"
)

const loginStatusOK = "ok"

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /auth/login. Unknown users and wrong passwords get the
// same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userStore.GetByUserID(r.Context(), req.UserID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("login for unknown user")
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, msgInvalidCredential, err,
				shared.WithElevatedLogLevel())
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgUnexpected, err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, msgInvalidCredential, err,
			shared.WithElevatedLogLevel())
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.UserID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	log.Info("user logged in", slog.String("user_id", user.UserID))
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Status:  loginStatusOK,
		Message: msgLoginSuccess,
		Token:   token,
	})
}
