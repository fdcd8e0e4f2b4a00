package admin

import (
	"net/http"

	"github.com/dropDatabas3/bicihub/internal/domain"
	httpx "github.com/dropDatabas3/bicihub/internal/http"
	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/admin"
)

// CompanyController maneja la company info (entidad única por tenant).
type CompanyController struct {
	service *svc.CompanyService
}

func NewCompanyController(service *svc.CompanyService) *CompanyController {
	return &CompanyController{service: service}
}

// Get maneja GET /admin/company
func (c *CompanyController) Get(w http.ResponseWriter, r *http.Request) {
	info, err := c.service.Get(r.Context())
	if err != nil {
		httperrors.WriteUpstreamError(w, err)
		return
	}
	if info == nil {
		httperrors.WriteError(w, httperrors.ErrNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, info)
}

// Update maneja PUT /admin/company
func (c *CompanyController) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.CompanyInfo
	if !httpx.ReadJSON(w, r, &req) {
		return
	}
	info, err := c.service.Update(r.Context(), req)
	if err != nil {
		httperrors.WriteUpstreamError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, info)
}
