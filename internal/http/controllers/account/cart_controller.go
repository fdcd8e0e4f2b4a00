package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/bicihub/internal/domain"
	httpx "github.com/dropDatabas3/bicihub/internal/http"
	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/account"
)

// CartController maneja el carrito del usuario.
type CartController struct {
	service *svc.Service
}

func NewCartController(service *svc.Service) *CartController {
	return &CartController{service: service}
}

// Get maneja GET /cart
func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.Cart(r.Context())
	if err != nil {
		httperrors.WriteUpstreamError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

// Add maneja POST /cart
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if !httpx.ReadJSON(w, r, &item) {
		return
	}
	if item.BikeID == "" {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("bikeId es obligatorio"))
		return
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	if err := c.service.AddToCart(r.Context(), item); err != nil {
		httperrors.WriteUpstreamError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Remove maneja DELETE /cart/{bikeId}
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	if err := c.service.RemoveFromCart(r.Context(), chi.URLParam(r, "bikeId")); err != nil {
		httperrors.WriteUpstreamError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
