package repo

// Metrics summarizes the inventory for the dashboard view.
type Metrics struct {
	TotalProducts int     `json:"total_products"`
	LowStockCount int     `json:"low_stock_count"`
	StockValue    float64 `json:"stock_value"`
}

type MetricsRepository interface {
	// GetDashboardMetrics computes the summary using the given low-stock
	// threshold.
	GetDashboardMetrics(threshold int) (Metrics, error)
}
