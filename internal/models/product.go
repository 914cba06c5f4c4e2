package models

// Product represents a product entity in the inventory system.
// Name is the identity used by intake reconciliation; lookups there are
// exact-match while the search endpoint matches case-insensitively.
type Product struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
	Category     string  `json:"category"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}
