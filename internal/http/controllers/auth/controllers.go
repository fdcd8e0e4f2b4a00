// Package auth contiene los controllers de los flujos de cuenta.
package auth

import (
	"github.com/dropDatabas3/bicihub/internal/session"

	svc "github.com/dropDatabas3/bicihub/internal/http/services/auth"
)

// Controllers agrupa todos los controllers del dominio auth.
type Controllers struct {
	Login    *LoginController
	Register *RegisterController
	Password *PasswordController
	Logout   *LogoutController
}

// NewControllers crea el agregador de controllers auth.
func NewControllers(s *svc.Service, sessions *session.Store) *Controllers {
	return &Controllers{
		Login:    NewLoginController(s, sessions),
		Register: NewRegisterController(s),
		Password: NewPasswordController(s),
		Logout:   NewLogoutController(s, sessions),
	}
}
