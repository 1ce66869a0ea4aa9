package client

import (
	"context"
	"fmt"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DetailSource loads the pieces of the product detail view. *Client satisfies it.
type DetailSource interface {
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	GetInventory(ctx context.Context, id int) ([]models.ProductInventory, error)
	GetPriceHistory(ctx context.Context, id int) ([]models.ProductListPriceHistory, error)
}

// Details is everything the product detail view shows.
type Details struct {
	Product      models.Product
	Inventory    []models.ProductInventory
	PriceHistory []models.ProductListPriceHistory
}

// TotalInventory sums the quantity held across all locations.
func (d Details) TotalInventory() int {
	total := 0
	for _, row := range d.Inventory {
		total += row.Quantity
	}
	return total
}

func (d Details) Status(now time.Time) models.Status {
	return d.Product.StatusAt(now)
}

// LoadDetails fetches the product with its inventory and price history in
// parallel. Only a product failure fails the load; the other lists come back
// empty when they cannot be fetched.
func LoadDetails(ctx context.Context, src DetailSource, id int) (*Details, error) {
	var (
		product *models.Product
		d       = Details{
			Inventory:    []models.ProductInventory{},
			PriceHistory: []models.ProductListPriceHistory{},
		}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := src.GetProduct(gctx, id)
		if err != nil {
			return fmt.Errorf("failed to load product %d: %w", id, err)
		}
		product = p
		return nil
	})
	g.Go(func() error {
		rows, err := src.GetInventory(gctx, id)
		if err != nil {
			zap.L().Warn("inventory unavailable", zap.Int("product_id", id), zap.Error(err))
			return nil
		}
		if rows != nil {
			d.Inventory = rows
		}
		return nil
	})
	g.Go(func() error {
		rows, err := src.GetPriceHistory(gctx, id)
		if err != nil {
			zap.L().Warn("price history unavailable", zap.Int("product_id", id), zap.Error(err))
			return nil
		}
		if rows != nil {
			d.PriceHistory = rows
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	d.Product = *product
	return &d, nil
}
