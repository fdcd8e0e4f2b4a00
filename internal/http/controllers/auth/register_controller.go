package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httpx "github.com/dropDatabas3/bicihub/internal/http"
	dto "github.com/dropDatabas3/bicihub/internal/http/dto/auth"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/auth"
	"github.com/dropDatabas3/bicihub/internal/observability/logger"
)

// RegisterController maneja el alta de cuenta y la verificación de email.
type RegisterController struct {
	service *svc.Service
}

func NewRegisterController(service *svc.Service) *RegisterController {
	return &RegisterController{service: service}
}

// Register maneja POST /register
func (c *RegisterController) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("RegisterController.Register"))

	var req dto.RegisterRequest
	if !httpx.ReadJSON(w, r, &req) {
		return
	}

	msg, err := c.service.Register(ctx, req)
	if err != nil {
		log.Debug("register failed", logger.Err(err))
		writeAuthError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"message": msg})
}

// VerifyEmail maneja GET /verify-email/{token}
func (c *RegisterController) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	msg, err := c.service.VerifyEmail(ctx, chi.URLParam(r, "token"))
	if err != nil {
		writeAuthError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}
