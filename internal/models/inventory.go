package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductInventory is the stock of a product at one location, shelf and bin.
type ProductInventory struct {
	ProductID    int       `json:"ProductID"`
	LocationID   int       `json:"LocationID"`
	Shelf        string    `json:"Shelf"`
	Bin          int       `json:"Bin"`
	Quantity     int       `json:"Quantity"`
	RowGUID      uuid.UUID `json:"rowguid"`
	ModifiedDate time.Time `json:"ModifiedDate"`
}
