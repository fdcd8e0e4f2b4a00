package auth

import (
	"errors"
	"net/http"

	httpx "github.com/dropDatabas3/bicihub/internal/http"
	dto "github.com/dropDatabas3/bicihub/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/auth"
	"github.com/dropDatabas3/bicihub/internal/observability/logger"
	"github.com/dropDatabas3/bicihub/internal/session"
)

// LoginController maneja login y verificación de OTP.
type LoginController struct {
	service  *svc.Service
	sessions *session.Store
}

// NewLoginController crea un nuevo controller de login.
func NewLoginController(service *svc.Service, sessions *session.Store) *LoginController {
	return &LoginController{service: service, sessions: sessions}
}

// Login maneja POST /login
func (c *LoginController) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("LoginController.Login"))

	var req dto.LoginRequest
	if !httpx.ReadJSON(w, r, &req) {
		return
	}

	res, rec, err := c.service.Login(ctx, req)
	if err != nil {
		log.Debug("login failed", logger.Err(err))
		writeAuthError(w, err)
		return
	}
	c.respond(w, res, rec)
}

// VerifyOTP maneja POST /otp
func (c *LoginController) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("LoginController.VerifyOTP"))

	var req dto.OTPRequest
	if !httpx.ReadJSON(w, r, &req) {
		return
	}

	res, rec, err := c.service.VerifyOTP(ctx, req)
	if err != nil {
		log.Debug("otp verification failed", logger.Err(err))
		writeAuthError(w, err)
		return
	}
	c.respond(w, res, rec)
}

func (c *LoginController) respond(w http.ResponseWriter, res *dto.LoginResponse, rec *session.Record) {
	if rec != nil {
		cookie, err := c.sessions.Cookie(rec)
		if err != nil {
			httperrors.WriteError(w, httperrors.ErrInternal.WithCause(err))
			return
		}
		http.SetCookie(w, cookie)
	}
	w.Header().Set("Cache-Control", "no-store")
	httpx.WriteJSON(w, http.StatusOK, res)
}

// ─── Helpers ───

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, svc.ErrMissingEmail):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("email es obligatorio"))

	case errors.Is(err, svc.ErrMissingPassword):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("password es obligatoria"))

	case errors.Is(err, svc.ErrMissingCode):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("código OTP es obligatorio"))

	case errors.Is(err, svc.ErrInvalidCredentials):
		httperrors.WriteError(w, httperrors.ErrUnauthorized.WithDetail("usuario o password inválidos"))

	default:
		httperrors.WriteUpstreamError(w, err)
	}
}
