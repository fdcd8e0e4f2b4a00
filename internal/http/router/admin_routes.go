package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/bicihub/internal/domain"
)

// registerAdminRoutes registra el backoffice bajo /admin, gated por rol
// admin. El CRUD genérico monta el mismo cuarteto por entidad; los casos
// especiales (company, upload de galería, estado de órdenes, moderación)
// se agregan aparte.
func registerAdminRoutes(r chi.Router, deps Deps) {
	a := deps.Admin

	r.Route("/admin", func(r chi.Router) {
		r.Use(deps.Guard.Require(domain.RoleAdmin))

		crud(r, "/settings", a.Settings.List, a.Settings.Create, a.Settings.Update, a.Settings.Delete)
		crud(r, "/modules", a.Modules.List, a.Modules.Create, a.Modules.Update, a.Modules.Delete)
		crud(r, "/bikes", a.Bikes.List, a.Bikes.Create, a.Bikes.Update, a.Bikes.Delete)
		crud(r, "/categories", a.Categories.List, a.Categories.Create, a.Categories.Update, a.Categories.Delete)
		crud(r, "/tenants", a.Tenants.List, a.Tenants.Create, a.Tenants.Update, a.Tenants.Delete)
		crud(r, "/payments", a.Payments.List, a.Payments.Create, a.Payments.Update, a.Payments.Delete)

		r.Get("/company", a.Company.Get)
		r.Put("/company", a.Company.Update)

		crud(r, "/gallery", a.Gallery.List, a.Gallery.Create, a.Gallery.Update, a.Gallery.Delete)
		r.Post("/gallery/upload", a.Gallery.Upload)

		r.Get("/orders", a.Orders.List)
		r.Patch("/orders/{id}/status", a.Orders.UpdateStatus)

		r.Get("/comments", a.Comments.List)
		r.Patch("/comments/{id}/approve", a.Comments.Approve)
		r.Delete("/comments/{id}", a.Comments.Delete)

		r.Get("/stats", a.Stats.Get)
	})
}

// crud monta el cuarteto estándar de una entidad de lista.
func crud(r chi.Router, path string, list, create, update, del http.HandlerFunc) {
	r.Get(path, list)
	r.Post(path, create)
	r.Put(path+"/{id}", update)
	r.Delete(path+"/{id}", del)
}
