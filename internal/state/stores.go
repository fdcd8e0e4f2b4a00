package state

import (
	"context"

	"github.com/dropDatabas3/bicihub/internal/api"
	"github.com/dropDatabas3/bicihub/internal/domain"
)

// Stores agrupa todos los slices del gateway, uno por entidad de negocio.
type Stores struct {
	// No tenant-scoped: la lista de tenants y el perfil autenticado
	Tenants *Slice[domain.Tenant]
	Profile *Value[domain.Profile]

	// Tenant-scoped: se limpian y refetchean al cambiar de tenant
	Settings   *Slice[domain.Setting]
	Company    *Value[domain.CompanyInfo]
	Modules    *Slice[domain.Module]
	Bikes      *Slice[domain.Bike]
	Categories *Slice[domain.Category]
	Cart       *Slice[domain.CartItem]
	Orders     *Slice[domain.Order]
	Payments   *Slice[domain.Payment]
	Gallery    *Slice[domain.GalleryImage]
	Comments   *Slice[domain.Comment]
}

// New construye los stores cableados al call wrapper. Los paths siguen la
// convención singular del upstream (/setting, /bike, …).
func New(client *api.Client) *Stores {
	return &Stores{
		Tenants:    listSlice[domain.Tenant](client, "tenants", "/tenant"),
		Profile:    NewValue("profile", client.CurrentProfile),
		Settings:   listSlice[domain.Setting](client, "settings", "/setting"),
		Company:    valueOf[domain.CompanyInfo](client, "company", "/company"),
		Modules:    listSlice[domain.Module](client, "modules", "/module"),
		Bikes:      listSlice[domain.Bike](client, "bikes", "/bike"),
		Categories: listSlice[domain.Category](client, "categories", "/category"),
		Cart:       listSlice[domain.CartItem](client, "cart", "/cart"),
		Orders:     listSlice[domain.Order](client, "orders", "/order"),
		Payments:   listSlice[domain.Payment](client, "payments", "/payment"),
		Gallery:    listSlice[domain.GalleryImage](client, "gallery", "/gallery"),
		Comments:   listSlice[domain.Comment](client, "comments", "/comment"),
	}
}

// TenantScoped retorna los slices que el switcher de tenant debe invalidar.
// Perfil y lista de tenants quedan fuera: no dependen del tenant activo.
func (s *Stores) TenantScoped() []Resettable {
	return []Resettable{
		s.Settings,
		s.Company,
		s.Modules,
		s.Bikes,
		s.Categories,
		s.Cart,
		s.Orders,
		s.Payments,
		s.Gallery,
		s.Comments,
	}
}

func listSlice[T any](client *api.Client, name, path string) *Slice[T] {
	return NewSlice(name, func(ctx context.Context) ([]T, error) {
		var out []T
		if _, err := client.Get(ctx, path, nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func valueOf[T any](client *api.Client, name, path string) *Value[T] {
	return NewValue(name, func(ctx context.Context) (*T, error) {
		var out T
		if _, err := client.Get(ctx, path, nil, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
}
