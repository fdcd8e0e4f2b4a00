package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/bicihub/internal/domain"
	httpx "github.com/dropDatabas3/bicihub/internal/http"
	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/admin"
)

// OrderController lista órdenes y transiciona su estado.
type OrderController struct {
	*ResourceController[domain.Order]
	service *svc.OrderService
}

func NewOrderController(service *svc.OrderService) *OrderController {
	return &OrderController{
		ResourceController: NewResourceController(service.Resource),
		service:            service,
	}
}

var validStatuses = map[domain.OrderStatus]bool{
	domain.OrderPending:   true,
	domain.OrderPaid:      true,
	domain.OrderShipped:   true,
	domain.OrderCancelled: true,
}

// UpdateStatus maneja PATCH /admin/orders/{id}/status
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if !httpx.ReadJSON(w, r, &req) {
		return
	}
	if !validStatuses[req.Status] {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("status inválido"))
		return
	}

	msg, err := c.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		httperrors.WriteUpstreamError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}
