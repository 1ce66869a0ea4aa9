package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/search"
)

const defaultQueryTimeout = 3 * time.Second

const productColumns = `productid, name, productnumber, makeflag, finishedgoodsflag, color,
	safetystocklevel, reorderpoint, standardcost, listprice, size, sizeunitmeasurecode,
	weightunitmeasurecode, weight, daystomanufacture, productline, class, style,
	productsubcategoryid, productmodelid, sellstartdate, sellenddate, discontinueddate,
	rowguid, modifieddate`

type PostgresProductRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewPostgresProductRepository reads the production schema through db. A zero timeout
// falls back to three seconds per query.
func NewPostgresProductRepository(db *sql.DB, timeout time.Duration) *PostgresProductRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &PostgresProductRepository{db: db, timeout: timeout}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (models.Product, error) {
	var p models.Product
	err := s.Scan(
		&p.ProductID, &p.Name, &p.ProductNumber, &p.MakeFlag, &p.FinishedGoodsFlag, &p.Color,
		&p.SafetyStockLevel, &p.ReorderPoint, &p.StandardCost, &p.ListPrice, &p.Size, &p.SizeUnitMeasureCode,
		&p.WeightUnitMeasureCode, &p.Weight, &p.DaysToManufacture, &p.ProductLine, &p.Class, &p.Style,
		&p.ProductSubcategoryID, &p.ProductModelID, &p.SellStartDate, &p.SellEndDate, &p.DiscontinuedDate,
		&p.RowGUID, &p.ModifiedDate,
	)
	return p, err
}

func (r *PostgresProductRepository) Search(ctx context.Context, c search.Criteria) ([]models.Product, int, error) {
	c = c.Normalize()
	conditions, args, argIdx := filterConditions(c.Filters)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM production.product WHERE 1=1" + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	if c.PastEnd(totalCount) {
		return []models.Product{}, totalCount, nil
	}

	query := "SELECT " + productColumns + " FROM production.product WHERE 1=1"
	query += conditions
	query += orderClause(c.SortBy, c.SortDir)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, c.Limit, c.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read products: %w", err)
	}

	return products, totalCount, nil
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	query := "SELECT " + productColumns + " FROM production.product WHERE productid = $1"
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to fetch product %d: %w", id, err)
	}
	return p, nil
}

func (r *PostgresProductRepository) GetInventory(ctx context.Context, productID int) ([]models.ProductInventory, error) {
	query := `SELECT productid, locationid, shelf, bin, quantity, rowguid, modifieddate
		FROM production.productinventory
		WHERE productid = $1
		ORDER BY locationid, shelf, bin`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	inventory := []models.ProductInventory{}
	for rows.Next() {
		var inv models.ProductInventory
		if err := rows.Scan(&inv.ProductID, &inv.LocationID, &inv.Shelf, &inv.Bin, &inv.Quantity, &inv.RowGUID, &inv.ModifiedDate); err != nil {
			return nil, fmt.Errorf("failed to scan inventory: %w", err)
		}
		inventory = append(inventory, inv)
	}
	return inventory, rows.Err()
}

func (r *PostgresProductRepository) GetPriceHistory(ctx context.Context, productID int) ([]models.ProductListPriceHistory, error) {
	query := `SELECT productid, startdate, enddate, listprice, modifieddate
		FROM production.productlistpricehistory
		WHERE productid = $1
		ORDER BY startdate DESC`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query price history: %w", err)
	}
	defer rows.Close()

	history := []models.ProductListPriceHistory{}
	for rows.Next() {
		var h models.ProductListPriceHistory
		if err := rows.Scan(&h.ProductID, &h.StartDate, &h.EndDate, &h.ListPrice, &h.ModifiedDate); err != nil {
			return nil, fmt.Errorf("failed to scan price history: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
