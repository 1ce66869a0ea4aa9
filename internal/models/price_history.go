package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductListPriceHistory is one list price a product carried from StartDate until EndDate.
type ProductListPriceHistory struct {
	ProductID    int             `json:"ProductID"`
	StartDate    time.Time       `json:"StartDate"`
	EndDate      *time.Time      `json:"EndDate"`
	ListPrice    decimal.Decimal `json:"ListPrice"`
	ModifiedDate time.Time       `json:"ModifiedDate"`
}
