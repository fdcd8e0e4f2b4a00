package public

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httpx "github.com/dropDatabas3/bicihub/internal/http"
	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/catalog"
	"github.com/dropDatabas3/bicihub/internal/observability/logger"
)

// StorefrontController sirve las páginas públicas de la tienda.
type StorefrontController struct {
	service *svc.Service
}

func NewStorefrontController(service *svc.Service) *StorefrontController {
	return &StorefrontController{service: service}
}

// Home maneja GET /. Tolera fallos parciales: cada bloque que falló llega
// vacío y el error queda en su slice.
func (c *StorefrontController) Home(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, c.service.Home(r.Context()))
}

// Bikes maneja GET /bikes?category={id}
func (c *StorefrontController) Bikes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bikes, err := c.service.Bikes(ctx, r.URL.Query().Get("category"))
	if err != nil {
		logger.From(ctx).Debug("bikes fetch failed", logger.Err(err))
		httperrors.WriteUpstreamError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bikes)
}

// BikeByID maneja GET /bikes/{id}
func (c *StorefrontController) BikeByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bike, err := c.service.BikeByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httperrors.WriteUpstreamError(w, err)
		return
	}
	if bike == nil {
		httperrors.WriteError(w, httperrors.ErrNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bike)
}

// Categories maneja GET /categories
func (c *StorefrontController) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := c.service.Categories(r.Context())
	if err != nil {
		httperrors.WriteUpstreamError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cats)
}

// Comments maneja GET /bikes/{id}/comments. Solo los aprobados.
func (c *StorefrontController) Comments(w http.ResponseWriter, r *http.Request) {
	comments, err := c.service.Comments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperrors.WriteUpstreamError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, comments)
}

// Settings maneja GET /settings
func (c *StorefrontController) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := c.service.Settings(r.Context())
	if err != nil {
		httperrors.WriteUpstreamError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, settings)
}
