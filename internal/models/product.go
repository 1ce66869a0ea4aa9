package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Money and weight go out as JSON numbers, the way clients expect them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a catalog item from production.product.
type Product struct {
	ProductID             int                 `json:"ProductID"`
	Name                  string              `json:"Name"`
	ProductNumber         string              `json:"ProductNumber"`
	MakeFlag              bool                `json:"MakeFlag"`
	FinishedGoodsFlag     bool                `json:"FinishedGoodsFlag"`
	Color                 *string             `json:"Color"`
	SafetyStockLevel      int                 `json:"SafetyStockLevel"`
	ReorderPoint          int                 `json:"ReorderPoint"`
	StandardCost          decimal.Decimal     `json:"StandardCost"`
	ListPrice             decimal.Decimal     `json:"ListPrice"`
	Size                  *string             `json:"Size"`
	SizeUnitMeasureCode   *string             `json:"SizeUnitMeasureCode"`
	WeightUnitMeasureCode *string             `json:"WeightUnitMeasureCode"`
	Weight                decimal.NullDecimal `json:"Weight"`
	DaysToManufacture     int                 `json:"DaysToManufacture"`
	ProductLine           *string             `json:"ProductLine"`
	Class                 *string             `json:"Class"`
	Style                 *string             `json:"Style"`
	ProductSubcategoryID  *int                `json:"ProductSubcategoryID"`
	ProductModelID        *int                `json:"ProductModelID"`
	SellStartDate         time.Time           `json:"SellStartDate"`
	SellEndDate           *time.Time          `json:"SellEndDate"`
	DiscontinuedDate      *time.Time          `json:"DiscontinuedDate"`
	RowGUID               uuid.UUID           `json:"rowguid"`
	ModifiedDate          time.Time           `json:"ModifiedDate"`
}

// Status is the lifecycle state of a product derived from its sell and discontinued dates.
type Status string

const (
	StatusActive       Status = "Active"
	StatusEnded        Status = "Ended"
	StatusDiscontinued Status = "Discontinued"
)

// StatusAt reports the lifecycle status of the product at the given instant.
func (p Product) StatusAt(now time.Time) Status {
	if p.DiscontinuedDate != nil {
		return StatusDiscontinued
	}
	if p.SellEndDate != nil && p.SellEndDate.Before(now) {
		return StatusEnded
	}
	return StatusActive
}
