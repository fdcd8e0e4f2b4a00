package admin

import (
	"github.com/dropDatabas3/bicihub/internal/api"
	"github.com/dropDatabas3/bicihub/internal/cache"
	"github.com/dropDatabas3/bicihub/internal/domain"
	"github.com/dropDatabas3/bicihub/internal/state"
)

// Resources agrupa todos los servicios del backoffice ya cableados.
type Resources struct {
	Settings   *Resource[domain.Setting]
	Modules    *Resource[domain.Module]
	Bikes      *Resource[domain.Bike]
	Categories *Resource[domain.Category]
	Tenants    *Resource[domain.Tenant]
	Payments   *Resource[domain.Payment]
	Company    *CompanyService
	Gallery    *GalleryService
	Orders     *OrderService
	Comments   *CommentService
	Stats      *StatsService
}

// NewResources cablea el backoffice completo contra los stores y el upstream.
// El pre-check de nombre duplicado aplica a las entidades con name plano;
// las de nombre localizado delegan la unicidad al upstream.
func NewResources(client *api.Client, stores *state.Stores, c cache.Client) *Resources {
	return &Resources{
		Settings: NewResource("settings", "/setting", client, stores.Settings,
			func(s domain.Setting) string { return s.Name }),
		Modules:    NewResource[domain.Module]("modules", "/module", client, stores.Modules, nil),
		Bikes:      NewResource[domain.Bike]("bikes", "/bike", client, stores.Bikes, nil),
		Categories: NewResource[domain.Category]("categories", "/category", client, stores.Categories, nil),
		Tenants: NewResource("tenants", "/tenant", client, stores.Tenants,
			func(t domain.Tenant) string { return t.Name }),
		Payments: NewResource[domain.Payment]("payments", "/payment", client, stores.Payments, nil),
		Company:  NewCompanyService(client, stores.Company),
		Gallery:  NewGalleryService(client, stores.Gallery),
		Orders:   NewOrderService(client, stores.Orders),
		Comments: NewCommentService(client, stores.Comments),
		Stats:    NewStatsService(c, stores),
	}
}
