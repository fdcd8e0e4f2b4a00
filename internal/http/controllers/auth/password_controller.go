package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httpx "github.com/dropDatabas3/bicihub/internal/http"
	dto "github.com/dropDatabas3/bicihub/internal/http/dto/auth"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/auth"
)

// PasswordController maneja forgot, reset y cambio de password.
type PasswordController struct {
	service *svc.Service
}

func NewPasswordController(service *svc.Service) *PasswordController {
	return &PasswordController{service: service}
}

// Forgot maneja POST /forgot-password
func (c *PasswordController) Forgot(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotPasswordRequest
	if !httpx.ReadJSON(w, r, &req) {
		return
	}
	msg, err := c.service.ForgotPassword(r.Context(), req)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// Reset maneja POST /reset-password/{token}
func (c *PasswordController) Reset(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if !httpx.ReadJSON(w, r, &req) {
		return
	}
	msg, err := c.service.ResetPassword(r.Context(), chi.URLParam(r, "token"), req)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// Change maneja POST /change-password (requiere sesión)
func (c *PasswordController) Change(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangePasswordRequest
	if !httpx.ReadJSON(w, r, &req) {
		return
	}
	msg, err := c.service.ChangePassword(r.Context(), req)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}
