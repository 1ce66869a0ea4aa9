package handlers

import (
	"context"

	repo "github.com/rogerio-castellano/product-catalog/internal/repo"
)

var (
	productRepo repo.ProductRepository
	metricsRepo repo.MetricsRepository

	readinessCheck func(ctx context.Context) error
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

// SetReadinessCheck installs the probe used by /ready, typically a database ping.
func SetReadinessCheck(check func(ctx context.Context) error) {
	readinessCheck = check
}
