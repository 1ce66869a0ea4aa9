package repo

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/search"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// Rows keep insertion order, which stands in for the store's natural order.
type InMemoryProductRepository struct {
	mu           sync.RWMutex
	products     []models.Product
	inventory    []models.ProductInventory
	priceHistory []models.ProductListPriceHistory
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products:     []models.Product{},
		inventory:    []models.ProductInventory{},
		priceHistory: []models.ProductListPriceHistory{},
	}
}

// Add stores products as they are, keeping their ProductID.
func (r *InMemoryProductRepository) Add(products ...models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, products...)
}

func (r *InMemoryProductRepository) AddInventory(rows ...models.ProductInventory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inventory = append(r.inventory, rows...)
}

func (r *InMemoryProductRepository) AddPriceHistory(rows ...models.ProductListPriceHistory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.priceHistory = append(r.priceHistory, rows...)
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
	r.inventory = []models.ProductInventory{}
	r.priceHistory = []models.ProductListPriceHistory{}
}

// GetAll returns a snapshot of every product.
func (r *InMemoryProductRepository) GetAll() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.products)
}

func (r *InMemoryProductRepository) Search(_ context.Context, c search.Criteria) ([]models.Product, int, error) {
	page, total := search.Apply(r.GetAll(), c)
	return page, total, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(_ context.Context, id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ProductID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetInventory returns the product's rows ordered by location, shelf and bin.
func (r *InMemoryProductRepository) GetInventory(_ context.Context, productID int) ([]models.ProductInventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := []models.ProductInventory{}
	for _, inv := range r.inventory {
		if inv.ProductID == productID {
			rows = append(rows, inv)
		}
	}
	slices.SortStableFunc(rows, func(a, b models.ProductInventory) int {
		return cmp.Or(
			cmp.Compare(a.LocationID, b.LocationID),
			cmp.Compare(a.Shelf, b.Shelf),
			cmp.Compare(a.Bin, b.Bin),
		)
	})
	return rows, nil
}

// GetPriceHistory returns the product's list prices, most recent StartDate first.
func (r *InMemoryProductRepository) GetPriceHistory(_ context.Context, productID int) ([]models.ProductListPriceHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := []models.ProductListPriceHistory{}
	for _, h := range r.priceHistory {
		if h.ProductID == productID {
			rows = append(rows, h)
		}
	}
	slices.SortStableFunc(rows, func(a, b models.ProductListPriceHistory) int {
		return b.StartDate.Compare(a.StartDate)
	})
	return rows, nil
}
