package middlewares

import (
	"net/http"

	"github.com/dropDatabas3/bicihub/internal/i18n"
	"github.com/dropDatabas3/bicihub/internal/state"
)

// WithLocale propaga el Accept-Language entrante al contexto (para que el
// call wrapper lo reenvíe) y persiste la preferencia si el request trae
// ?locale=xx explícito.
func WithLocale(prefs *state.Prefs, locales *i18n.Resolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if q := r.URL.Query().Get("locale"); q != "" && prefs != nil {
				if locales.Supported(q) {
					prefs.SetLocale(i18n.Primary(q))
				}
			}
			ctx := i18n.WithRequestLanguage(r.Context(), r.Header.Get("Accept-Language"))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
