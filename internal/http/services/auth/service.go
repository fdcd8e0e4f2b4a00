// Package auth implementa los flujos de cuenta contra el upstream:
// register, login, OTP, verificación de email, reset de password y logout.
// El upstream es quien valida credenciales y emite el token; este service
// solo orquesta las llamadas, la sesión local y el slice de perfil.
package auth

import (
	"context"
	"errors"
	"net/url"

	"github.com/dropDatabas3/bicihub/internal/api"
	"github.com/dropDatabas3/bicihub/internal/domain"
	dto "github.com/dropDatabas3/bicihub/internal/http/dto/auth"
	"github.com/dropDatabas3/bicihub/internal/observability/logger"
	"github.com/dropDatabas3/bicihub/internal/session"
	"github.com/dropDatabas3/bicihub/internal/state"
)

var (
	ErrMissingEmail       = errors.New("auth: email is required")
	ErrMissingPassword    = errors.New("auth: password is required")
	ErrMissingCode        = errors.New("auth: code is required")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)

// loginResult es la respuesta del upstream a login/otp.
type loginResult struct {
	Token       string          `json:"token"`
	Profile     *domain.Profile `json:"profile"`
	RequiresOTP bool            `json:"requiresOtp"`
}

// Service orquesta los flujos de cuenta.
type Service struct {
	client   *api.Client
	sessions *session.Store
	profile  *state.Value[domain.Profile]
}

// NewService crea el service de auth.
func NewService(client *api.Client, sessions *session.Store, profile *state.Value[domain.Profile]) *Service {
	return &Service{client: client, sessions: sessions, profile: profile}
}

// Login autentica contra el upstream. Si la cuenta exige OTP, retorna
// (nil, nil, RequiresOTP=true) sin crear sesión.
func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, *session.Record, error) {
	if req.Email == "" {
		return nil, nil, ErrMissingEmail
	}
	if req.Password == "" {
		return nil, nil, ErrMissingPassword
	}

	// Un intento de login arranca limpio: si el probe de perfil dejó un error
	// registrado (upstream caído), no debe bloquear la sesión nueva.
	s.profile.ClearError()

	var res loginResult
	if _, err := s.client.Post(ctx, "/auth/login", api.JSON(req), &res); err != nil {
		if api.IsUnauthenticated(err) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if res.RequiresOTP {
		return &dto.LoginResponse{RequiresOTP: true}, nil, nil
	}
	return s.establish(ctx, &res)
}

// VerifyOTP completa un login con segundo factor.
func (s *Service) VerifyOTP(ctx context.Context, req dto.OTPRequest) (*dto.LoginResponse, *session.Record, error) {
	if req.Email == "" {
		return nil, nil, ErrMissingEmail
	}
	if req.Code == "" {
		return nil, nil, ErrMissingCode
	}

	var res loginResult
	if _, err := s.client.Post(ctx, "/auth/otp", api.JSON(req), &res); err != nil {
		if api.IsUnauthenticated(err) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	return s.establish(ctx, &res)
}

// establish crea la sesión local y fija el perfil en el slice.
func (s *Service) establish(ctx context.Context, res *loginResult) (*dto.LoginResponse, *session.Record, error) {
	if res.Profile == nil {
		return nil, nil, ErrInvalidCredentials
	}
	rec, err := s.sessions.Create(ctx, res.Profile.ID, res.Token)
	if err != nil {
		return nil, nil, err
	}
	s.profile.Set(res.Profile)

	logger.From(ctx).Info("login established",
		logger.Layer("service"), logger.ProfileID(res.Profile.ID))

	return &dto.LoginResponse{Profile: res.Profile}, rec, nil
}

// Register da de alta una cuenta. El upstream envía el mail de verificación.
func (s *Service) Register(ctx context.Context, req dto.RegisterRequest) (string, error) {
	if req.Email == "" {
		return "", ErrMissingEmail
	}
	if req.Password == "" {
		return "", ErrMissingPassword
	}
	res, err := s.client.Post(ctx, "/auth/register", api.JSON(req), nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// VerifyEmail confirma el token del mail de verificación.
func (s *Service) VerifyEmail(ctx context.Context, token string) (string, error) {
	res, err := s.client.Get(ctx, "/auth/verify-email/"+url.PathEscape(token), nil, nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// ForgotPassword dispara el mail de reset.
func (s *Service) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (string, error) {
	if req.Email == "" {
		return "", ErrMissingEmail
	}
	res, err := s.client.Post(ctx, "/auth/forgot", api.JSON(req), nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// ResetPassword consume el token de reset y fija la password nueva.
func (s *Service) ResetPassword(ctx context.Context, token string, req dto.ResetPasswordRequest) (string, error) {
	if req.Password == "" {
		return "", ErrMissingPassword
	}
	res, err := s.client.Post(ctx, "/auth/reset/"+url.PathEscape(token), api.JSON(req), nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// ChangePassword cambia la password del perfil autenticado.
func (s *Service) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (string, error) {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return "", ErrMissingPassword
	}
	res, err := s.client.Post(ctx, "/auth/change-password", api.JSON(req), nil)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// Logout revoca la sesión local, avisa al upstream (best-effort) y limpia el
// slice de perfil.
func (s *Service) Logout(ctx context.Context, rec *session.Record) {
	if rec != nil {
		_ = s.sessions.Delete(ctx, rec.ID)
	}
	if _, err := s.client.Post(ctx, "/auth/logout", nil, nil); err != nil {
		logger.From(ctx).Debug("upstream logout failed", logger.Err(err))
	}
	s.profile.Clear(s.profileEpoch())
}

func (s *Service) profileEpoch() uint64 {
	_, st := s.profile.Get()
	return st.Epoch
}
