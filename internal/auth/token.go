// Package auth holds the credential helpers shared by the account service and
// the HTTP middleware: token lookup, JWT signing, password policy and TOTP.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenCookie     = "token"
	HostTokenCookie = "__Host-token"
)

var (
	ErrNoToken         = errors.New("auth: no token in request")
	ErrMalformedHeader = errors.New("auth: malformed authorization header")
)

// TokenFromRequest returns the access token carried by r. The Authorization
// bearer header is read first, then the "token" cookie, then "__Host-token".
// A present but malformed Authorization header is an error rather than a
// reason to fall through to cookies.
func TokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", ErrMalformedHeader
		}

		return parts[1], nil
	}

	for _, name := range []string{TokenCookie, HostTokenCookie} {
		if c, err := r.Cookie(name); err == nil && c.Value != "" {
			return c.Value, nil
		}
	}

	return "", ErrNoToken
}

// SignToken issues an HS256 token for claims valid for ttl.
func SignToken(claims *models.Claims, key []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(key)
}

// ParseToken verifies tokenString and returns its claims.
func ParseToken(tokenString string, key []byte) (*models.Claims, error) {
	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return key, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("auth: invalid token")
	}

	return claims, nil
}
