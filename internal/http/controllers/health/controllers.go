// Package health contiene los health checks del gateway.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/dropDatabas3/bicihub/internal/cache"
	httpx "github.com/dropDatabas3/bicihub/internal/http"
)

// Controller responde los checks de liveness y readiness.
type Controller struct {
	cache cache.Client
}

// NewController crea el controller de health.
func NewController(c cache.Client) *Controller {
	return &Controller{cache: c}
}

// Live maneja GET /healthz. Vivo = el proceso responde.
func (c *Controller) Live(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready maneja GET /readyz. Listo = el backend de cache contesta.
func (c *Controller) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := c.cache.Ping(ctx); err != nil {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"cache":  err.Error(),
		})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
