package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/errors"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils/response"
	"github.com/google/uuid"
)

const (
	CSRFHeader = "X-CSRF-Token"

	maxCSRFBodyPeek = 1 << 20
)

type CSRFValidator interface {
	ValidateCSRFToken(ctx context.Context, userID uuid.UUID, token string) error
}

type csrfBody struct {
	CSRFToken string `json:"csrfToken"`
	Data      *struct {
		CSRFToken string `json:"csrfToken"`
	} `json:"data"`
}

// CSRF rejects mutating requests whose token does not match the one issued to
// the signed-in user. The token is read from X-CSRF-Token, or from a
// "csrfToken" field of a JSON body. Must run after Authenticate.
func CSRF(validator CSRFValidator, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		logger := LoggerFromContext(r.Context())

		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			response.LocalizedError(w, r, errors.UnauthorizedError("Authentication required").WithKey(i18n.KeyUnauthorized))
			return
		}

		token := r.Header.Get(CSRFHeader)
		if token == "" {
			var err error

			token, err = tokenFromBody(r)
			if err != nil {
				logger.Warn("Failed to read request body for CSRF token", slog.String("error", err.Error()))
			}
		}

		if token == "" {
			logger.Warn("CSRF token missing")
			response.LocalizedError(w, r, errors.CSRFError("CSRF token missing").WithKey(i18n.KeySessionExpired))
			return
		}

		if err := validator.ValidateCSRFToken(r.Context(), claims.UserID, token); err != nil {
			logger.Warn("CSRF token rejected", slog.String("error", err.Error()))
			response.LocalizedError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// replayBody serves the peeked bytes followed by the unread rest of the
// original body, which it closes.
type replayBody struct {
	io.Reader
	io.Closer
}

// tokenFromBody peeks at a JSON body and puts it back for the handler.
func tokenFromBody(r *http.Request) (string, error) {

	if r.Body == nil || !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return "", nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxCSRFBodyPeek))
	r.Body = replayBody{Reader: io.MultiReader(bytes.NewReader(raw), r.Body), Closer: r.Body}

	if err != nil {
		return "", err
	}

	var body csrfBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", nil
	}

	if body.CSRFToken != "" {
		return body.CSRFToken, nil
	}

	if body.Data != nil {
		return body.Data.CSRFToken, nil
	}

	return "", nil
}
