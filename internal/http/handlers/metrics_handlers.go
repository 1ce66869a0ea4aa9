package handlers

import (
	"net/http"
)

// GetCatalogMetricsHandler godoc
// @Summary Product counts by lifecycle status
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /metrics/catalog [get]
func GetCatalogMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metricsRepo.GetCatalogMetrics(r.Context())
	if err != nil {
		internalError(w, r, "failed to fetch metrics", err)
		return
	}
	respond(w, r, http.StatusOK, m)
}
