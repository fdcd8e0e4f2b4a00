// Package catalog sirve las lecturas públicas del storefront desde los
// slices: home (company + módulos + galería), catálogo de bikes, categorías
// y comentarios. Los slices se fetchean on-demand la primera vez y quedan
// poblados hasta el próximo tenant switch.
package catalog

import (
	"context"
	"net/url"

	"github.com/dropDatabas3/bicihub/internal/api"
	"github.com/dropDatabas3/bicihub/internal/domain"
	"github.com/dropDatabas3/bicihub/internal/state"
)

// Home es el payload de la página principal.
type Home struct {
	Company *domain.CompanyInfo   `json:"company"`
	Modules []domain.Module       `json:"modules"`
	Gallery []domain.GalleryImage `json:"gallery"`
}

// Service agrupa las lecturas públicas.
type Service struct {
	client *api.Client
	stores *state.Stores
}

// NewService crea el service de catálogo.
func NewService(client *api.Client, stores *state.Stores) *Service {
	return &Service{client: client, stores: stores}
}

// ensure fetchea un slice si aún no está sincronizado para la época vigente.
// Un error registrado por un fetch anterior no es terminal: el próximo
// request vuelve a intentar, igual que una página que se re-monta.
func ensure[T any](ctx context.Context, s *state.Slice[T]) ([]T, error) {
	items, st := s.Snapshot()
	if st.Synced {
		return items, nil
	}
	if err := s.Fetch(ctx, st.Epoch); err != nil {
		return nil, err
	}
	items, _ = s.Snapshot()
	return items, nil
}

// Bikes retorna el catálogo, opcionalmente filtrado por categoría.
// Solo se exponen bikes habilitadas.
func (s *Service) Bikes(ctx context.Context, categoryID string) ([]domain.Bike, error) {
	items, err := ensure(ctx, s.stores.Bikes)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Bike, 0, len(items))
	for _, b := range items {
		if !b.Enabled {
			continue
		}
		if categoryID != "" && b.CategoryID != categoryID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// BikeByID busca una bike en el slice; si no está, consulta el upstream
// directamente (p.ej. deep-link a un detalle antes del primer listado).
func (s *Service) BikeByID(ctx context.Context, id string) (*domain.Bike, error) {
	items, st := s.stores.Bikes.Snapshot()
	if st.Synced {
		for _, b := range items {
			if b.ID == id && b.Enabled {
				return &b, nil
			}
		}
	}
	var bike domain.Bike
	if _, err := s.client.Get(ctx, "/bike/"+url.PathEscape(id), nil, &bike); err != nil {
		return nil, err
	}
	// Una bike deshabilitada está oculta del listado; el deep-link al detalle
	// tampoco la expone.
	if !bike.Enabled {
		return nil, nil
	}
	return &bike, nil
}

// Categories retorna las categorías habilitadas.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	items, err := ensure(ctx, s.stores.Categories)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(items))
	for _, c := range items {
		if c.Enabled {
			out = append(out, c)
		}
	}
	return out, nil
}

// Comments retorna los comentarios aprobados de una bike.
func (s *Service) Comments(ctx context.Context, bikeID string) ([]domain.Comment, error) {
	items, err := ensure(ctx, s.stores.Comments)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0)
	for _, c := range items {
		if c.BikeID == bikeID && c.Approved {
			out = append(out, c)
		}
	}
	return out, nil
}

// Home arma el payload de la home: company info, módulos habilitados y
// galería. Un fallo parcial no tumba la página, se sirve lo que haya.
func (s *Service) Home(ctx context.Context) Home {
	var h Home

	if company, st := s.stores.Company.Get(); st.Synced {
		h.Company = company
	} else if err := s.stores.Company.Fetch(ctx, st.Epoch); err == nil {
		h.Company, _ = s.stores.Company.Get()
	}

	if modules, err := ensure(ctx, s.stores.Modules); err == nil {
		h.Modules = make([]domain.Module, 0, len(modules))
		for _, m := range modules {
			if m.Enabled {
				h.Modules = append(h.Modules, m)
			}
		}
	}

	if gallery, err := ensure(ctx, s.stores.Gallery); err == nil {
		h.Gallery = make([]domain.GalleryImage, 0, len(gallery))
		for _, g := range gallery {
			if g.Enabled {
				h.Gallery = append(h.Gallery, g)
			}
		}
	}
	return h
}

// Tenants retorna la lista de tenants disponibles (no tenant-scoped).
func (s *Service) Tenants(ctx context.Context) ([]domain.Tenant, error) {
	return ensure(ctx, s.stores.Tenants)
}

// Settings retorna los settings del tenant activo.
func (s *Service) Settings(ctx context.Context) ([]domain.Setting, error) {
	return ensure(ctx, s.stores.Settings)
}
