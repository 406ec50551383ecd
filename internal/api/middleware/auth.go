package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/precise-api/internal/api/shared"
	"github.com/phrazzld/precise-api/internal/service/auth"
)

const bearerPrefix = "Bearer "

// Messages returned by the gate. Both use the error envelope.
const (
	msgNoAccess     = "no access to endpoint"
	msgInvalidToken = "invalid token"
)

type claimsKey struct{}

// AuthGate rejects every request that is not on the allow-list and does not
// carry a valid bearer token. Rejected requests never reach the next handler.
type AuthGate struct {
	jwtService auth.JWTService
	allow      map[string]struct{}
	logger     *slog.Logger
}

// NewAuthGate creates a gate that lets the exact paths in allow through
// without a token.
func NewAuthGate(jwtService auth.JWTService, allow []string, logger *slog.Logger) *AuthGate {
	if jwtService == nil {
		panic("jwtService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	set := make(map[string]struct{}, len(allow))
	for _, p := range allow {
		set[p] = struct{}{}
	}

	return &AuthGate{
		jwtService: jwtService,
		allow:      set,
		logger:     logger.With(slog.String("component", "auth_gate")),
	}
}

// Authenticate is the chi middleware form of the gate.
func (g *AuthGate) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := g.allow[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
		if !ok || token == "" {
			shared.RespondWithErrorEnvelope(w, r, http.StatusUnauthorized, msgNoAccess)
			return
		}

		claims, err := g.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			g.logger.DebugContext(r.Context(), "rejected bearer token",
				slog.String("path", r.URL.Path),
				slog.String("trace_id", shared.GetTraceID(r.Context())))
			shared.RespondWithErrorEnvelope(w, r, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the claims the gate attached to the request.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok && claims != nil
}

// ActingUser returns the subject of the request's token, or "" when the
// request was not authenticated.
func ActingUser(ctx context.Context) string {
	if claims, ok := ClaimsFromContext(ctx); ok {
		return claims.Subject
	}
	return ""
}
