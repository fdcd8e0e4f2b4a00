package middlewares

import (
	"net/http"

	"github.com/dropDatabas3/bicihub/internal/tenant"
)

// WithTenantSelect observa el identificador de tenant del request
// (header X-Tenant-ID o query ?tenant=) y lo aplica al switcher. El switcher
// es idempotente: si el tenant no cambió, no pasa nada; si cambió, limpia y
// refetchea todos los slices tenant-scoped antes de que el handler lea
// estado.
func WithTenantSelect(sw *tenant.Switcher) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Tenant-ID")
			if id == "" {
				id = r.URL.Query().Get("tenant")
			}
			if id != "" {
				sw.Select(r.Context(), id)
			}
			next.ServeHTTP(w, r)
		})
	}
}
