package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

type InMemoryMetricsRepository struct {
	productRepo *InMemoryProductRepository
	now         func() time.Time
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{now: time.Now}
}

func (i *InMemoryMetricsRepository) SetRepositories(productRepo *InMemoryProductRepository) {
	i.productRepo = productRepo
}

// GetCatalogMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetCatalogMetrics(_ context.Context) (Metrics, error) {
	m := Metrics{}
	if i.productRepo == nil {
		return m, nil
	}

	now := i.now()
	for _, p := range i.productRepo.GetAll() {
		m.TotalProducts++
		switch p.StatusAt(now) {
		case models.StatusDiscontinued:
			m.DiscontinuedProducts++
		case models.StatusEnded:
			m.EndedProducts++
		default:
			m.ActiveProducts++
		}
	}
	return m, nil
}
