// Package router define el árbol de rutas del gateway: storefront público,
// área de usuario (gated por sesión) y backoffice (gated por rol admin).
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dropDatabas3/bicihub/internal/cache"
	"github.com/dropDatabas3/bicihub/internal/config"
	httpx "github.com/dropDatabas3/bicihub/internal/http"
	accountctrl "github.com/dropDatabas3/bicihub/internal/http/controllers/account"
	adminctrl "github.com/dropDatabas3/bicihub/internal/http/controllers/admin"
	authctrl "github.com/dropDatabas3/bicihub/internal/http/controllers/auth"
	healthctrl "github.com/dropDatabas3/bicihub/internal/http/controllers/health"
	publicctrl "github.com/dropDatabas3/bicihub/internal/http/controllers/public"
	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	mw "github.com/dropDatabas3/bicihub/internal/http/middlewares"
	"github.com/dropDatabas3/bicihub/internal/i18n"
	"github.com/dropDatabas3/bicihub/internal/state"
	"github.com/dropDatabas3/bicihub/internal/tenant"
)

// Deps contiene todo lo que el router necesita ya cableado.
type Deps struct {
	Config   *config.Config
	Cache    cache.Client
	Prefs    *state.Prefs
	Locales  *i18n.Resolver
	Switcher *tenant.Switcher
	Guard    *mw.Guard

	Public  *publicctrl.Controllers
	Auth    *authctrl.Controllers
	Account *accountctrl.Controllers
	Admin   *adminctrl.Controllers
	Health  *healthctrl.Controller
}

// New arma el router completo.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Middlewares globales, de afuera hacia adentro
	r.Use(func(next http.Handler) http.Handler {
		return mw.Chain(next,
			mw.WithRecover(),
			mw.WithRequestID(),
			mw.WithLogging(),
			mw.WithCORS(deps.Config.Server.CORSAllowedOrigins),
			mw.WithLocale(deps.Prefs, deps.Locales),
			mw.WithTenantSelect(deps.Switcher),
		)
	})
	if deps.Config.Metrics.Enabled {
		r.Use(func(next http.Handler) http.Handler {
			return mw.Chain(next, httpx.WithMetrics())
		})
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
	})

	// Health + métricas quedan fuera de los gates
	r.Get("/healthz", deps.Health.Live)
	r.Get("/readyz", deps.Health.Ready)
	if deps.Config.Metrics.Enabled {
		r.Method(http.MethodGet, "/metrics", httpx.RegisterMetrics(prometheus.DefaultRegisterer))
	}

	registerPublicRoutes(r, deps)
	registerUserRoutes(r, deps)
	registerAdminRoutes(r, deps)

	return r
}
