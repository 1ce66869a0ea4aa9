package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
)

// Order returns a sorted copy of products. Text compares case-insensitively,
// nulls sort after every value, and ties fall back to ProductID ascending.
func Order(products []models.Product, by Field, dir Direction) []models.Product {
	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, func(a, b models.Product) int {
		c := compareBy(a, b, by)
		if dir == Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ProductID, b.ProductID)
	})
	return sorted
}

func compareBy(a, b models.Product, by Field) int {
	switch by {
	case FieldProductID:
		return cmp.Compare(a.ProductID, b.ProductID)
	case FieldListPrice:
		return a.ListPrice.Cmp(b.ListPrice)
	case FieldWeight:
		return compareNullDecimal(a.Weight, b.Weight)
	case FieldSellStartDate:
		return a.SellStartDate.Compare(b.SellStartDate)
	default:
		return compareText(Attribute(a, by), Attribute(b, by))
	}
}

func compareText(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return strings.Compare(strings.ToLower(*a), strings.ToLower(*b))
}

func compareNullDecimal(a, b decimal.NullDecimal) int {
	switch {
	case !a.Valid && !b.Valid:
		return 0
	case !a.Valid:
		return 1
	case !b.Valid:
		return -1
	}
	return a.Decimal.Cmp(b.Decimal)
}

// Slice returns the window [(page-1)*limit, page*limit) of products.
// Pages past the end yield an empty slice.
func Slice(products []models.Product, page, limit int) []models.Product {
	c := Criteria{Page: page, Limit: limit}.Normalize()
	if c.PastEnd(len(products)) {
		return []models.Product{}
	}
	start := c.Offset()
	end := len(products)
	if c.Limit < end-start {
		end = start + c.Limit
	}
	return products[start:end]
}

// TotalPages is ceil(total/limit), but never less than one.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if total <= 0 {
		return 1
	}
	return (total-1)/limit + 1
}

// Apply runs the filter, order and slice steps over an in-memory catalog and
// returns the requested page with the pre-pagination match count.
func Apply(products []models.Product, c Criteria) ([]models.Product, int) {
	c = c.Normalize()
	filtered := Filter(products, c.Filters)
	ordered := Order(filtered, c.SortBy, c.SortDir)
	return Slice(ordered, c.Page, c.Limit), len(filtered)
}
