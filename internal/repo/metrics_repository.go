package repo

import "context"

// Metrics summarizes the catalog by lifecycle status.
type Metrics struct {
	TotalProducts        int `json:"total_products"`
	ActiveProducts       int `json:"active_products"`
	EndedProducts        int `json:"ended_products"`
	DiscontinuedProducts int `json:"discontinued_products"`
}

type MetricsRepository interface {
	GetCatalogMetrics(ctx context.Context) (Metrics, error)
}
