package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/bicihub/internal/domain"
	httpx "github.com/dropDatabas3/bicihub/internal/http"
	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/admin"
)

// CommentController modera los comentarios del tenant.
type CommentController struct {
	*ResourceController[domain.Comment]
	service *svc.CommentService
}

func NewCommentController(service *svc.CommentService) *CommentController {
	return &CommentController{
		ResourceController: NewResourceController(service.Resource),
		service:            service,
	}
}

// Approve maneja PATCH /admin/comments/{id}/approve
func (c *CommentController) Approve(w http.ResponseWriter, r *http.Request) {
	msg, err := c.service.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperrors.WriteUpstreamError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}
