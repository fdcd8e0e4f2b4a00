package state

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dropDatabas3/bicihub/internal/api"
)

// Value es el estado de una entidad única (perfil, company info). Mismo
// contrato de fencing y flags que Slice, con un solo item que puede ser nil
// ("fetch resuelto sin entidad", p.ej. perfil sin sesión).
type Value[T any] struct {
	name  string
	fetch func(ctx context.Context) (*T, error)

	mu      sync.RWMutex
	item    *T
	loading bool
	synced  bool
	err     *api.Error
	success string
	epoch   uint64

	group singleflight.Group
}

// NewValue crea un value cuyo contenido se obtiene con fetch.
func NewValue[T any](name string, fetch func(ctx context.Context) (*T, error)) *Value[T] {
	return &Value[T]{name: name, fetch: fetch}
}

func (v *Value[T]) Name() string { return v.name }

// Clear descarta el item y los flags. No-op con época vieja.
func (v *Value[T]) Clear(epoch uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if epoch < v.epoch {
		return
	}
	v.epoch = epoch
	v.item = nil
	v.loading = false
	v.synced = false
	v.err = nil
	v.success = ""
}

// Fetch obtiene la entidad para la época dada, con dedupe y fencing.
func (v *Value[T]) Fetch(ctx context.Context, epoch uint64) error {
	v.mu.Lock()
	if epoch < v.epoch {
		v.mu.Unlock()
		return nil
	}
	v.epoch = epoch
	v.loading = true
	v.mu.Unlock()

	_, err, _ := v.group.Do(fmt.Sprintf("%s:%d", v.name, epoch), func() (any, error) {
		item, err := v.fetch(ctx)
		v.apply(epoch, item, err)
		return nil, err
	})
	return err
}

func (v *Value[T]) apply(epoch uint64, item *T, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if epoch != v.epoch {
		return
	}
	v.loading = false
	if err != nil {
		v.err = asAPIError(err)
		return
	}
	v.item = item
	v.synced = true
	v.err = nil
}

// Get retorna el item actual (puede ser nil) y los flags.
func (v *Value[T]) Get() (*T, Status) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.item, Status{
		Loading: v.loading,
		Synced:  v.synced,
		Err:     v.err,
		Success: v.success,
		Epoch:   v.epoch,
	}
}

// Set fija el item directamente (p.ej. el perfil que retorna el login).
func (v *Value[T]) Set(item *T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.item = item
	v.synced = true
	v.err = nil
}

// SetError registra un error de mutación.
func (v *Value[T]) SetError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.err = asAPIError(err)
	v.success = ""
}

// ClearError limpia el error registrado (p.ej. al navegar a /login, para que
// un fallo transitorio del probe no bloquee el acceso indefinidamente).
func (v *Value[T]) ClearError() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.err = nil
}
