package admin

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	httpx "github.com/dropDatabas3/bicihub/internal/http"
	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/admin"
	"github.com/dropDatabas3/bicihub/internal/observability/logger"
)

const maxAdminBodySize = 256 * 1024 // 256KB

// ResourceController es el CRUD HTTP genérico de una entidad del backoffice.
// El payload se pasa crudo al upstream: el gateway no re-valida el shape,
// solo aplica el pre-check de duplicados del service.
type ResourceController[T any] struct {
	resource *svc.Resource[T]
}

func NewResourceController[T any](resource *svc.Resource[T]) *ResourceController[T] {
	return &ResourceController[T]{resource: resource}
}

// List maneja GET /admin/{entidad}
func (c *ResourceController[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.resource.List(r.Context())
	if err != nil {
		httperrors.WriteUpstreamError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

// Create maneja POST /admin/{entidad}
func (c *ResourceController[T]) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, ok := readRaw(w, r)
	if !ok {
		return
	}
	msg, err := c.resource.Create(ctx, payload)
	if err != nil {
		logger.From(ctx).Debug("create failed",
			logger.String("resource", c.resource.Name()), logger.Err(err))
		writeResourceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"message": msg})
}

// Update maneja PUT /admin/{entidad}/{id}
func (c *ResourceController[T]) Update(w http.ResponseWriter, r *http.Request) {
	payload, ok := readRaw(w, r)
	if !ok {
		return
	}
	msg, err := c.resource.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeResourceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// Delete maneja DELETE /admin/{entidad}/{id}
func (c *ResourceController[T]) Delete(w http.ResponseWriter, r *http.Request) {
	msg, err := c.resource.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeResourceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// ─── Helpers ───

func readRaw(w http.ResponseWriter, r *http.Request) (json.RawMessage, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAdminBodySize)
	defer r.Body.Close()

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		httperrors.WriteError(w, httperrors.ErrBadRequest)
		return nil, false
	}
	if !json.Valid(raw) {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return nil, false
	}
	return raw, true
}

func writeResourceError(w http.ResponseWriter, err error) {
	var appErr *httperrors.AppError
	if errors.As(err, &appErr) {
		httperrors.WriteError(w, appErr)
		return
	}
	httperrors.WriteUpstreamError(w, err)
}
