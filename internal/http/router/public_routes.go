package router

import (
	"github.com/go-chi/chi/v5"
)

// registerPublicRoutes registra el storefront y los flujos de cuenta que no
// requieren sesión previa.
func registerPublicRoutes(r chi.Router, deps Deps) {
	// Storefront
	r.Get("/", deps.Public.Storefront.Home)
	r.Get("/bikes", deps.Public.Storefront.Bikes)
	r.Get("/bikes/{id}", deps.Public.Storefront.BikeByID)
	r.Get("/bikes/{id}/comments", deps.Public.Storefront.Comments)
	r.Get("/categories", deps.Public.Storefront.Categories)
	r.Get("/settings", deps.Public.Storefront.Settings)

	// Selección de tenant
	r.Get("/tenants", deps.Public.Tenants.List)
	r.Post("/tenants/select", deps.Public.Tenants.Select)

	// Flujos de cuenta sin sesión
	r.Post("/login", deps.Auth.Login.Login)
	r.Post("/otp", deps.Auth.Login.VerifyOTP)
	r.Post("/register", deps.Auth.Register.Register)
	r.Get("/verify-email/{token}", deps.Auth.Register.VerifyEmail)
	r.Post("/forgot-password", deps.Auth.Password.Forgot)
	r.Post("/reset-password/{token}", deps.Auth.Password.Reset)
	r.Post("/logout", deps.Auth.Logout.Logout)
}
