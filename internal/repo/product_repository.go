package repo

import (
	"errors"

	"github.com/rfalcao/stockwatch/internal/models"
)

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrDuplicatedValueUnique = errors.New("duplicated value in unique column")
)

// ProductRepository defines the persistence contract the intake and alert
// layers depend on. Any backend satisfying it gets the same reconciliation
// semantics.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	// GetByName is an exact-match lookup; this is the identity check used
	// by intake reconciliation.
	GetByName(name string) (models.Product, error)
	// Search matches the query as a case-insensitive substring of either
	// the product name or the category.
	Search(query string) ([]models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
}
