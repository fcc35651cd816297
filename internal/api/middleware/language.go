package middleware

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
)

// Language resolves the response language from ?lang= or Accept-Language and
// stores it in the request context.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		lang := i18n.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))

		w.Header().Set("Content-Language", string(lang))
		w.Header().Add("Vary", "Accept-Language")

		ctx := i18n.WithLang(r.Context(), lang)
		ctx = WithLogger(ctx, LoggerFromContext(ctx).With(slog.String("lang", string(lang))))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
