// Package admin contiene los controllers del backoffice. Todas las rutas
// cuelgan de /admin y exigen rol admin vía guard; el CRUD genérico cubre
// las entidades de lista y los casos especiales tienen controller propio.
package admin

import (
	"github.com/dropDatabas3/bicihub/internal/domain"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/admin"
)

// Controllers agrupa los controllers del backoffice.
type Controllers struct {
	Settings   *ResourceController[domain.Setting]
	Modules    *ResourceController[domain.Module]
	Bikes      *ResourceController[domain.Bike]
	Categories *ResourceController[domain.Category]
	Tenants    *ResourceController[domain.Tenant]
	Payments   *ResourceController[domain.Payment]
	Company    *CompanyController
	Gallery    *GalleryController
	Orders     *OrderController
	Comments   *CommentController
	Stats      *StatsController
}

// NewControllers crea el agregador de controllers admin.
func NewControllers(s *svc.Resources) *Controllers {
	return &Controllers{
		Settings:   NewResourceController(s.Settings),
		Modules:    NewResourceController(s.Modules),
		Bikes:      NewResourceController(s.Bikes),
		Categories: NewResourceController(s.Categories),
		Tenants:    NewResourceController(s.Tenants),
		Payments:   NewResourceController(s.Payments),
		Company:    NewCompanyController(s.Company),
		Gallery:    NewGalleryController(s.Gallery),
		Orders:     NewOrderController(s.Orders),
		Comments:   NewCommentController(s.Comments),
		Stats:      NewStatsController(s.Stats),
	}
}
