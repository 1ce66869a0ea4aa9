package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/search"
)

// ProductRepository defines the read operations over the product catalog.
type ProductRepository interface {
	// Search returns one page of matching products and the number of matches across all pages.
	Search(ctx context.Context, c search.Criteria) ([]models.Product, int, error)
	GetByID(ctx context.Context, id int) (models.Product, error)
	GetInventory(ctx context.Context, productID int) ([]models.ProductInventory, error)
	GetPriceHistory(ctx context.Context, productID int) ([]models.ProductListPriceHistory, error)
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")
