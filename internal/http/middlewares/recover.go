package middlewares

import (
	"net/http"

	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	"github.com/dropDatabas3/bicihub/internal/observability/logger"
)

// WithRecover atrapa panics de handlers y responde 500.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.From(r.Context()).Error("handler panic",
						logger.Any("panic", rec),
						logger.Path(r.URL.Path),
					)
					httperrors.WriteError(w, httperrors.ErrInternal)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
