package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/dropDatabas3/bicihub/internal/observability/logger"
	"github.com/dropDatabas3/bicihub/internal/util/atomicwrite"
)

// prefsFile es el archivo donde persisten las preferencias locales.
const prefsFile = "preferences.json"

// prefsData es lo que se persiste: el tenant seleccionado y el locale
// preferido (el equivalente del local storage del cliente web).
type prefsData struct {
	TenantID string `json:"tenantId,omitempty"`
	Locale   string `json:"locale,omitempty"`
}

// Prefs es la persistencia local best-effort de preferencias. Se lee una vez
// al arrancar; cada cambio exitoso se escribe de forma atómica. Un fallo de
// escritura se loguea y no corta el flujo.
type Prefs struct {
	path string
	mu   sync.RWMutex
	data prefsData
}

// OpenPrefs carga (o inicializa) las preferencias en dir.
func OpenPrefs(dir string) *Prefs {
	p := &Prefs{path: filepath.Join(dir, prefsFile)}
	b, err := os.ReadFile(p.path)
	if err == nil {
		_ = json.Unmarshal(b, &p.data)
	}
	return p
}

// TenantID retorna el tenant persistido ("" si no hay).
func (p *Prefs) TenantID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.data.TenantID
}

// Locale retorna el locale preferido ("" si no hay).
func (p *Prefs) Locale() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.data.Locale
}

// SetTenantID persiste el tenant seleccionado.
func (p *Prefs) SetTenantID(id string) {
	p.mu.Lock()
	p.data.TenantID = id
	p.mu.Unlock()
	p.flush()
}

// SetLocale persiste el locale preferido.
func (p *Prefs) SetLocale(locale string) {
	p.mu.Lock()
	p.data.Locale = locale
	p.mu.Unlock()
	p.flush()
}

func (p *Prefs) flush() {
	p.mu.RLock()
	b, err := json.MarshalIndent(p.data, "", "  ")
	p.mu.RUnlock()
	if err == nil {
		err = atomicwrite.WriteFile(p.path, b, 0o644)
	}
	if err != nil {
		logger.L().Warn("prefs flush failed",
			logger.Component("state"), logger.Err(err))
	}
}
