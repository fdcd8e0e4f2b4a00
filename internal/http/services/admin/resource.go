// Package admin implementa el CRUD del backoffice como proxies tipados
// sobre el call wrapper, manteniendo el slice de cada entidad en sync:
// tras una mutación confirmada se registra el successMessage y se refetchea
// el slice; un fallo queda en el error del slice y se propaga al caller.
package admin

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/dropDatabas3/bicihub/internal/api"
	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	"github.com/dropDatabas3/bicihub/internal/state"
)

// Resource es el CRUD genérico de una entidad del backoffice.
type Resource[T any] struct {
	name   string
	path   string
	client *api.Client
	slice  *state.Slice[T]

	// nameOf extrae el nombre "único" de un item para el pre-check de
	// duplicados. nil = sin pre-check.
	nameOf func(T) string
}

// NewResource crea un recurso admin. path es el endpoint del upstream
// (p.ej. "/setting").
func NewResource[T any](name, path string, client *api.Client, slice *state.Slice[T], nameOf func(T) string) *Resource[T] {
	return &Resource[T]{name: name, path: path, client: client, slice: slice, nameOf: nameOf}
}

func (r *Resource[T]) Name() string { return r.name }

// List retorna los items, fetcheando on-demand.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	items, st := r.slice.Snapshot()
	if st.Synced {
		return items, nil
	}
	if err := r.slice.Fetch(ctx, st.Epoch); err != nil {
		return nil, err
	}
	items, _ = r.slice.Snapshot()
	return items, nil
}

// Create da de alta un item. Si el recurso tiene pre-check de duplicados y
// el payload trae un name ya existente, falla client-side sin llamar al
// upstream.
func (r *Resource[T]) Create(ctx context.Context, payload json.RawMessage) (string, error) {
	if r.nameOf != nil {
		if name := payloadName(payload); name != "" {
			items, _ := r.slice.Snapshot()
			for _, it := range items {
				if strings.EqualFold(r.nameOf(it), name) {
					err := httperrors.ErrDuplicateName
					r.slice.SetError(err)
					return "", err
				}
			}
		}
	}
	res, err := r.client.Post(ctx, r.path, api.JSON(payload), nil)
	if err != nil {
		r.slice.SetError(err)
		return "", err
	}
	r.applied(ctx, res.Message)
	return res.Message, nil
}

// Update modifica un item por ID.
func (r *Resource[T]) Update(ctx context.Context, id string, payload json.RawMessage) (string, error) {
	res, err := r.client.Put(ctx, r.itemPath(id), api.JSON(payload), nil)
	if err != nil {
		r.slice.SetError(err)
		return "", err
	}
	r.applied(ctx, res.Message)
	return res.Message, nil
}

// Delete elimina un item por ID.
func (r *Resource[T]) Delete(ctx context.Context, id string) (string, error) {
	res, err := r.client.Delete(ctx, r.itemPath(id), nil)
	if err != nil {
		r.slice.SetError(err)
		return "", err
	}
	r.applied(ctx, res.Message)
	return res.Message, nil
}

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

// applied registra el éxito y refresca el slice dentro de la época vigente.
func (r *Resource[T]) applied(ctx context.Context, msg string) {
	r.slice.SetSuccess(msg)
	_, st := r.slice.Snapshot()
	_ = r.slice.Fetch(ctx, st.Epoch)
}

// payloadName extrae el campo name de un payload crudo ("" si no hay).
func payloadName(payload json.RawMessage) string {
	var probe struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return ""
	}
	return strings.TrimSpace(probe.Name)
}
