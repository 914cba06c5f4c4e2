package repo

// InMemoryMetricsRepository computes dashboard metrics from an
// InMemoryProductRepository, for tests and local runs without Postgres.
type InMemoryMetricsRepository struct {
	products *InMemoryProductRepository
}

func NewInMemoryMetricsRepository(products *InMemoryProductRepository) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{products: products}
}

func (r *InMemoryMetricsRepository) GetDashboardMetrics(threshold int) (Metrics, error) {
	all, err := r.products.GetAll()
	if err != nil {
		return Metrics{}, err
	}

	var m Metrics
	for _, p := range all {
		m.TotalProducts++
		if p.Quantity < threshold {
			m.LowStockCount++
		}
		m.StockValue += float64(p.Quantity) * p.PricePerUnit
	}
	return m, nil
}
