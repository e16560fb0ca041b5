package admin

import (
	"net/http"
	"treeuniformes_server/handling"

	"github.com/MonkyMars/gecho"
)

// GetDashboardStats aggregates the numbers shown on the admin home screen.
func (ar *AdminRoutesManager) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := ar.dashboardService.GetStats(r.Context())
	if err != nil {
		handling.HandleError(err, "error.dashboard.failedToFetch", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(stats),
		gecho.Send(),
	)
}
