package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/bicihub/internal/domain"
)

// registerUserRoutes registra el área de usuario. Todo el subárbol pasa por
// el profile gate con rol user.
func registerUserRoutes(r chi.Router, deps Deps) {
	r.Group(func(r chi.Router) {
		r.Use(deps.Guard.Require(domain.RoleUser))

		r.Get("/account", deps.Account.Profile.Get)
		r.Put("/account", deps.Account.Profile.Update)
		r.Put("/account/image", deps.Account.Profile.UpdateImage)
		r.Post("/change-password", deps.Auth.Password.Change)

		r.Get("/cart", deps.Account.Cart.Get)
		r.Post("/cart", deps.Account.Cart.Add)
		r.Delete("/cart/{bikeId}", deps.Account.Cart.Remove)
	})
}
