// Package account implementa las operaciones del perfil autenticado:
// lectura, actualización de datos y subida de imagen de perfil.
package account

import (
	"context"
	"io"
	"net/url"

	"github.com/dropDatabas3/bicihub/internal/api"
	"github.com/dropDatabas3/bicihub/internal/domain"
	dto "github.com/dropDatabas3/bicihub/internal/http/dto/account"
	"github.com/dropDatabas3/bicihub/internal/state"
)

// Service opera sobre el perfil del upstream y mantiene el slice en sync.
type Service struct {
	client  *api.Client
	profile *state.Value[domain.Profile]
	cart    *state.Slice[domain.CartItem]
}

// NewService crea el service de cuenta.
func NewService(client *api.Client, profile *state.Value[domain.Profile], cart *state.Slice[domain.CartItem]) *Service {
	return &Service{client: client, profile: profile, cart: cart}
}

// Update actualiza los datos del perfil y refleja el resultado en el slice.
func (s *Service) Update(ctx context.Context, req dto.UpdateRequest) (*domain.Profile, error) {
	var updated domain.Profile
	if _, err := s.client.Put(ctx, "/auth/me", api.JSON(req), &updated); err != nil {
		s.profile.SetError(err)
		return nil, err
	}
	s.profile.Set(&updated)
	return &updated, nil
}

// UpdateImage sube la imagen de perfil (multipart).
func (s *Service) UpdateImage(ctx context.Context, filename string, content io.Reader) (*domain.Profile, error) {
	form := api.NewForm().AddFile("image", filename, content)
	var updated domain.Profile
	if _, err := s.client.Put(ctx, "/auth/me/image", form, &updated); err != nil {
		s.profile.SetError(err)
		return nil, err
	}
	s.profile.Set(&updated)
	return &updated, nil
}

// Cart retorna el carrito del tenant activo, fetcheando on-demand.
func (s *Service) Cart(ctx context.Context) ([]domain.CartItem, error) {
	items, st := s.cart.Snapshot()
	if st.Synced {
		return items, nil
	}
	if err := s.cart.Fetch(ctx, st.Epoch); err != nil {
		return nil, err
	}
	items, _ = s.cart.Snapshot()
	return items, nil
}

// AddToCart agrega una línea al carrito y aplica la mutación local.
func (s *Service) AddToCart(ctx context.Context, item domain.CartItem) error {
	if _, err := s.client.Post(ctx, "/cart", api.JSON(item), nil); err != nil {
		s.cart.SetError(err)
		return err
	}
	s.cart.Mutate(func(items []domain.CartItem) []domain.CartItem {
		for i, existing := range items {
			if existing.BikeID == item.BikeID {
				items[i].Quantity += item.Quantity
				return items
			}
		}
		return append(items, item)
	})
	return nil
}

// RemoveFromCart elimina una línea del carrito.
func (s *Service) RemoveFromCart(ctx context.Context, bikeID string) error {
	if _, err := s.client.Delete(ctx, "/cart/"+url.PathEscape(bikeID), nil); err != nil {
		s.cart.SetError(err)
		return err
	}
	s.cart.Mutate(func(items []domain.CartItem) []domain.CartItem {
		out := items[:0]
		for _, it := range items {
			if it.BikeID != bikeID {
				out = append(out, it)
			}
		}
		return out
	})
	return nil
}
