// Package account contiene los controllers del área de usuario: perfil,
// imagen y carrito. Todas las rutas pasan por el guard de sesión.
package account

import (
	svc "github.com/dropDatabas3/bicihub/internal/http/services/account"
)

// Controllers agrupa los controllers de cuenta.
type Controllers struct {
	Profile *ProfileController
	Cart    *CartController
}

// NewControllers crea el agregador de controllers de cuenta.
func NewControllers(s *svc.Service) *Controllers {
	return &Controllers{
		Profile: NewProfileController(s),
		Cart:    NewCartController(s),
	}
}
