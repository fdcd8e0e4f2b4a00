package public

import (
	"net/http"

	httpx "github.com/dropDatabas3/bicihub/internal/http"
	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/catalog"
	"github.com/dropDatabas3/bicihub/internal/observability/logger"
	"github.com/dropDatabas3/bicihub/internal/tenant"
)

// TenantController lista los tenants disponibles y permite cambiar el activo.
type TenantController struct {
	service  *svc.Service
	switcher *tenant.Switcher
}

func NewTenantController(service *svc.Service, sw *tenant.Switcher) *TenantController {
	return &TenantController{service: service, switcher: sw}
}

// List maneja GET /tenants
func (c *TenantController) List(w http.ResponseWriter, r *http.Request) {
	tenants, err := c.service.Tenants(r.Context())
	if err != nil {
		httperrors.WriteUpstreamError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"tenants": tenants,
		"current": c.switcher.Current(),
	})
}

// Select maneja POST /tenants/select. Los clears son síncronos: cuando se
// responde, ningún slice conserva datos del tenant anterior.
func (c *TenantController) Select(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		TenantID string `json:"tenantId"`
	}
	if !httpx.ReadJSON(w, r, &req) {
		return
	}
	if req.TenantID == "" {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("tenantId es obligatorio"))
		return
	}

	prev := c.switcher.Current()
	c.switcher.Select(ctx, req.TenantID)
	if c.switcher.Current() != prev {
		httpx.ObserveTenantSwitch()
	}
	logger.From(ctx).Info("tenant selected", logger.TenantID(req.TenantID))

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"current": c.switcher.Current(),
	})
}
