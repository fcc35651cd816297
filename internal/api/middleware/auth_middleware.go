package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/auth"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/errors"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils/response"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var UserContextKey = contextKey(uuid.New())

// SessionVersions reports the current session version of a user. Tokens
// issued under an older version were revoked by a password change.
type SessionVersions interface {
	SessionVersion(ctx context.Context, userID uuid.UUID) (int64, error)
}

type AuthMiddleware struct {
	jwtKey   []byte
	sessions SessionVersions
}

// NewAuthMiddleware builds the middleware; sessions may be nil, in which case
// tokens are not checked for revocation.
func NewAuthMiddleware(jwtKey []byte, sessions SessionVersions) *AuthMiddleware {

	return &AuthMiddleware{jwtKey: jwtKey, sessions: sessions}

}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)

	return claims, ok && claims != nil
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		tokenString, err := auth.TokenFromRequest(r)
		if err != nil {
			logger.Warn("Missing or malformed credentials", slog.String("error", err.Error()))
			response.LocalizedError(w, r, errors.UnauthorizedError("Authentication required").WithKey(i18n.KeyUnauthorized))
			return
		}

		claims, err := m.verify(r.Context(), tokenString)
		if err != nil {
			logger.Warn("Token rejected", slog.String("error", err.Error()))
			response.LocalizedError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.withClaims(r.Context(), claims)))
	}
}

// OptionalAuthenticate attaches claims when the request carries a valid token
// and otherwise serves the request anonymously.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		tokenString, err := auth.TokenFromRequest(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.verify(r.Context(), tokenString)
		if err != nil {
			LoggerFromContext(r.Context()).Debug("Ignoring invalid token on public route", slog.String("error", err.Error()))
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.withClaims(r.Context(), claims)))
	}
}

// RequireRole must run after Authenticate.
func RequireRole(role models.Role, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			response.LocalizedError(w, r, errors.UnauthorizedError("Authentication required").WithKey(i18n.KeyUnauthorized))
			return
		}

		if claims.Role != role {
			LoggerFromContext(r.Context()).Warn("Role check failed", slog.String("role", string(claims.Role)), slog.String("required", string(role)))
			response.LocalizedError(w, r, errors.ForbiddenError("Insufficient permissions").WithKey(i18n.KeyForbidden))
			return
		}

		next.ServeHTTP(w, r)
	}
}

func (m *AuthMiddleware) verify(ctx context.Context, tokenString string) (*models.Claims, error) {

	claims, err := auth.ParseToken(tokenString, m.jwtKey)
	if err != nil {
		return nil, errors.UnauthorizedError("Invalid or expired token").WithKey(i18n.KeySessionExpired).WithError(err)
	}

	if m.sessions == nil {
		return claims, nil
	}

	current, err := m.sessions.SessionVersion(ctx, claims.UserID)
	if err != nil {
		return nil, errors.InternalError("Failed to verify session").WithError(err)
	}

	if claims.SessionVersion != current {
		return nil, errors.UnauthorizedError("Session revoked").WithKey(i18n.KeySessionExpired)
	}

	return claims, nil
}

func (m *AuthMiddleware) withClaims(ctx context.Context, claims *models.Claims) context.Context {

	ctx = context.WithValue(ctx, UserContextKey, claims)

	requestScopedLogger := LoggerFromContext(ctx).With(slog.String("userId", claims.UserID.String()))
	requestScopedLogger.Info("User authenticated")

	return WithLogger(ctx, requestScopedLogger)
}
