// Package public contiene los controllers del storefront: lecturas de
// catálogo y selección de tenant. Ninguno requiere sesión.
package public

import (
	svc "github.com/dropDatabas3/bicihub/internal/http/services/catalog"
	"github.com/dropDatabas3/bicihub/internal/tenant"
)

// Controllers agrupa los controllers públicos.
type Controllers struct {
	Storefront *StorefrontController
	Tenants    *TenantController
}

// NewControllers crea el agregador de controllers públicos.
func NewControllers(s *svc.Service, sw *tenant.Switcher) *Controllers {
	return &Controllers{
		Storefront: NewStorefrontController(s),
		Tenants:    NewTenantController(s, sw),
	}
}
