package admin

import (
	"net/http"

	httpx "github.com/dropDatabas3/bicihub/internal/http"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/admin"
)

// StatsController expone el snapshot operativo del gateway.
type StatsController struct {
	service *svc.StatsService
}

func NewStatsController(service *svc.StatsService) *StatsController {
	return &StatsController{service: service}
}

// Get maneja GET /admin/stats
func (c *StatsController) Get(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, c.service.Snapshot(r.Context()))
}
