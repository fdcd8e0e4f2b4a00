// Package tenant implementa la selección de tenant del proceso y el efecto
// de invalidación que dispara cada cambio: limpiar todos los slices
// tenant-scoped de forma síncrona y relanzar sus fetches para el tenant
// nuevo. El identificador seleccionado es un singleton con setter
// controlado; nadie más lo muta.
package tenant

import (
	"context"
	"sync"

	"github.com/dropDatabas3/bicihub/internal/observability/logger"
	"github.com/dropDatabas3/bicihub/internal/state"
)

// Switcher mantiene el tenant seleccionado y re-arma el efecto de
// invalidación en cada cambio, durante toda la vida del proceso.
type Switcher struct {
	mu      sync.Mutex
	current string
	epoch   uint64

	slices  []state.Resettable
	prefs   *state.Prefs
	baseCtx context.Context

	// wg permite a los tests esperar los refetches despachados.
	wg sync.WaitGroup
}

// New crea un switcher sobre los slices tenant-scoped dados. prefs puede ser
// nil (sin persistencia). baseCtx es el contexto de los refetches en
// background; los fetches no se cancelan al cambiar de tenant, el fencing
// por época descarta sus respuestas tardías.
func New(baseCtx context.Context, prefs *state.Prefs, slices []state.Resettable) *Switcher {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Switcher{slices: slices, prefs: prefs, baseCtx: baseCtx}
}

// Restore aplica la selección persistida, si existe. Llamar una vez al
// arrancar.
func (s *Switcher) Restore(ctx context.Context) {
	if s.prefs == nil {
		return
	}
	if id := s.prefs.TenantID(); id != "" {
		s.Select(ctx, id)
	}
}

// Current retorna el tenant seleccionado ("" si ninguno).
func (s *Switcher) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Epoch retorna la época vigente.
func (s *Switcher) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// Select cambia el tenant seleccionado. Reglas:
//
//   - mismo tenant: no-op, sin clears ni fetches (guard de idempotencia)
//   - tenant nuevo: se incrementa la época, se limpian TODOS los slices
//     registrados sincrónicamente (ningún render intermedio ve datos del
//     tenant anterior) y recién después se despachan los refetches,
//     concurrentes entre sí y sin transacción: el fallo de un slice queda
//     en su propio estado y no bloquea ni revierte a los demás.
//
// La selección se persiste best-effort tras aplicar los clears.
func (s *Switcher) Select(ctx context.Context, tenantID string) {
	if tenantID == "" {
		return
	}

	s.mu.Lock()
	if tenantID == s.current {
		s.mu.Unlock()
		return
	}
	prev := s.current
	s.current = tenantID
	s.epoch++
	epoch := s.epoch
	s.mu.Unlock()

	log := logger.From(ctx).With(
		logger.Component("tenant"),
		logger.TenantID(tenantID),
		logger.Epoch(epoch),
	)
	log.Info("tenant switch", logger.String("previous", prev))

	// (a) clears, síncronos y antes de cualquier fetch
	for _, sl := range s.slices {
		sl.Clear(epoch)
	}

	if s.prefs != nil {
		s.prefs.SetTenantID(tenantID)
	}

	// (b) refetches concurrentes, con la época como fence
	for _, sl := range s.slices {
		sl := sl
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if err := sl.Fetch(s.baseCtx, epoch); err != nil {
				// el error ya quedó en el estado del slice
				log.Debug("slice refetch failed",
					logger.Slice(sl.Name()), logger.Err(err))
			}
		}()
	}
}

// Wait bloquea hasta que terminen los refetches despachados. Para tests y
// shutdown ordenado.
func (s *Switcher) Wait() { s.wg.Wait() }
