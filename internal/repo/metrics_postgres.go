package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics(threshold int) (Metrics, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE quantity < $1),
		       COALESCE(SUM(quantity * price_per_unit), 0)
		FROM products`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m Metrics
	err := r.db.QueryRowContext(ctx, query, threshold).Scan(&m.TotalProducts, &m.LowStockCount, &m.StockValue)
	return m, err
}
