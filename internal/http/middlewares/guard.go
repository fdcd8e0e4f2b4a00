package middlewares

import (
	"net/http"
	"net/url"

	"github.com/dropDatabas3/bicihub/internal/domain"
	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	"github.com/dropDatabas3/bicihub/internal/observability/logger"
	"github.com/dropDatabas3/bicihub/internal/session"
	"github.com/dropDatabas3/bicihub/internal/state"
)

// Guard es el profile gate: exige un perfil autenticado (y opcionalmente un
// rol) antes de dejar pasar el request a un subárbol de rutas.
type Guard struct {
	Profile  *state.Value[domain.Profile]
	Sessions *session.Store // opcional
	// LoginPath recibe el redirect cuando no hay perfil; HomePath cuando el
	// rol no alcanza.
	LoginPath string
	HomePath  string
}

// Require gatea el subárbol con el rol dado (RoleGuest = solo autenticado).
//
// Orden del algoritmo, que es contrato:
//
//  1. sin perfil, sin fetch en vuelo y sin error previo → disparar UN fetch
//     de perfil (deduplicado) y esperar su resultado
//  2. fetch en vuelo (de otro request) → respuesta de "cargando"
//  3. error registrado → responder el error, SIN redirect (distingue
//     "backend caído" de "no autenticado")
//  4. fetch resuelto sin perfil → redirect a login preservando el destino
//  5. rol insuficiente → redirect a home
//  6. si no, pasa, con el perfil en el contexto
func (g *Guard) Require(required domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if g.Sessions != nil {
				if rec, err := g.Sessions.FromRequest(r); err == nil && rec != nil {
					ctx = WithSession(ctx, rec)
				}
			}

			p, st := g.Profile.Get()
			if p == nil && !st.Loading && st.Err == nil && !st.Synced {
				// Paso 1: un solo fetch; llamadas concurrentes se deduplican
				_ = g.Profile.Fetch(ctx, st.Epoch)
				p, st = g.Profile.Get()
			}

			switch {
			case st.Loading:
				w.Header().Set("Retry-After", "1")
				httperrors.WriteError(w, httperrors.ErrProfileLoading)
				return

			case st.Err != nil:
				// Paso 3: error ≠ no autenticado; nada de redirects
				logger.From(ctx).Warn("profile gate blocked by fetch error",
					logger.Err(st.Err))
				httperrors.WriteError(w,
					httperrors.ErrUpstreamUnavailable.WithDetail(st.Err.Message))
				return

			case p == nil:
				target := g.LoginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, target, http.StatusFound)
				return

			case required != "" && required != domain.RoleGuest && !p.Role.Satisfies(required):
				http.Redirect(w, r, g.HomePath, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithProfile(ctx, p)))
		})
	}
}
