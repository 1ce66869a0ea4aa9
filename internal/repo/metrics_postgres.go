package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type PostgresMetricsRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresMetricsRepository(db *sql.DB, timeout time.Duration) *PostgresMetricsRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &PostgresMetricsRepository{db: db, timeout: timeout}
}

func (r *PostgresMetricsRepository) GetCatalogMetrics(ctx context.Context) (Metrics, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var m Metrics
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE discontinueddate IS NULL AND (sellenddate IS NULL OR sellenddate >= $1)),
		       COUNT(*) FILTER (WHERE discontinueddate IS NULL AND sellenddate < $1),
		       COUNT(*) FILTER (WHERE discontinueddate IS NOT NULL)
		FROM production.product
	`, time.Now().UTC()).Scan(&m.TotalProducts, &m.ActiveProducts, &m.EndedProducts, &m.DiscontinuedProducts)
	if err != nil {
		return Metrics{}, fmt.Errorf("failed to compute catalog metrics: %w", err)
	}

	return m, nil
}
