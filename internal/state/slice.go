// Package state mantiene el estado en memoria del gateway: un slice por
// entidad de negocio (settings, bikes, cart, …), cada uno con sus flags de
// loading/error/success. Los slices tenant-scoped se registran en el
// switcher de tenant, que los limpia y refetchea al cambiar la selección.
//
// Fencing por época: cada fetch viaja con la época monótona del switcher;
// una respuesta cuya época quedó vieja se descarta en vez de pisar el estado
// del tenant nuevo.
package state

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dropDatabas3/bicihub/internal/api"
	"github.com/dropDatabas3/bicihub/internal/observability/logger"
)

// Resettable es lo que el switcher de tenant necesita de un slice.
type Resettable interface {
	Name() string
	Clear(epoch uint64)
	Fetch(ctx context.Context, epoch uint64) error
}

// Status son los flags de un slice en un instante dado.
type Status struct {
	Loading bool
	Synced  bool // hubo al menos un fetch exitoso desde el último Clear
	Err     *api.Error
	Success string
	Epoch   uint64
}

// Slice es el estado de una colección de entidades de un tenant.
type Slice[T any] struct {
	name  string
	fetch func(ctx context.Context) ([]T, error)

	mu      sync.RWMutex
	items   []T
	loading bool
	synced  bool
	err     *api.Error
	success string
	epoch   uint64

	group singleflight.Group
}

// NewSlice crea un slice cuyo contenido se obtiene con fetch.
func NewSlice[T any](name string, fetch func(ctx context.Context) ([]T, error)) *Slice[T] {
	return &Slice[T]{name: name, fetch: fetch}
}

func (s *Slice[T]) Name() string { return s.name }

// Clear descarta items y flags. Es síncrono: al retornar, ningún lector verá
// datos del tenant anterior. Un Clear con época vieja es un no-op.
func (s *Slice[T]) Clear(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch < s.epoch {
		return
	}
	s.epoch = epoch
	s.items = nil
	s.loading = false
	s.synced = false
	s.err = nil
	s.success = ""
}

// Fetch obtiene el contenido del slice para la época dada. Llamadas
// concurrentes con la misma época se deduplican. El resultado solo se aplica
// si la época sigue vigente cuando la respuesta llega.
func (s *Slice[T]) Fetch(ctx context.Context, epoch uint64) error {
	s.mu.Lock()
	if epoch < s.epoch {
		s.mu.Unlock()
		return nil // fetch de un tenant ya abandonado
	}
	s.epoch = epoch
	s.loading = true
	s.mu.Unlock()

	_, err, _ := s.group.Do(fmt.Sprintf("%s:%d", s.name, epoch), func() (any, error) {
		items, err := s.fetch(ctx)
		s.apply(epoch, items, err)
		return nil, err
	})
	return err
}

// apply aplica el resultado de un fetch si su época sigue vigente.
func (s *Slice[T]) apply(epoch uint64, items []T, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		// respuesta tardía de una selección anterior
		logger.L().Debug("stale response discarded",
			logger.Slice(s.name), logger.Epoch(epoch))
		return
	}
	s.loading = false
	if err != nil {
		s.err = asAPIError(err)
		return
	}
	s.items = items
	s.synced = true
	s.err = nil
}

// Items retorna una copia de los items actuales.
func (s *Slice[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Snapshot retorna items y flags de forma consistente.
func (s *Slice[T]) Snapshot() ([]T, Status) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out, Status{
		Loading: s.loading,
		Synced:  s.synced,
		Err:     s.err,
		Success: s.success,
		Epoch:   s.epoch,
	}
}

// Status retorna solo los flags.
func (s *Slice[T]) Status() Status {
	_, st := s.Snapshot()
	return st
}

// SetSuccess registra un mensaje de éxito (create/update/delete).
func (s *Slice[T]) SetSuccess(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.success = msg
	s.err = nil
}

// SetError registra un error producido por una mutación.
func (s *Slice[T]) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = asAPIError(err)
	s.success = ""
}

// Mutate aplica una transformación local a los items (tras un create/update/
// delete confirmado por el upstream, sin esperar al próximo fetch).
func (s *Slice[T]) Mutate(fn func(items []T) []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = fn(s.items)
}

// asAPIError garantiza que todo error guardado en un slice sea el envelope
// normalizado.
func asAPIError(err error) *api.Error {
	if ae, ok := api.AsError(err); ok {
		return ae
	}
	return &api.Error{Kind: api.KindTransport, Message: err.Error()}
}
