package search

import "github.com/rogerio-castellano/product-catalog/internal/models"

// Result is the response envelope of a product search.
type Result struct {
	Products    []models.Product `json:"products"`
	TotalCount  int              `json:"totalCount"`
	CurrentPage int              `json:"currentPage"`
	TotalPages  int              `json:"totalPages"`
}

// Assemble packages one page of products with its pagination metadata.
func Assemble(products []models.Product, totalCount int, c Criteria) Result {
	c = c.Normalize()
	if products == nil {
		products = []models.Product{}
	}
	return Result{
		Products:    products,
		TotalCount:  totalCount,
		CurrentPage: c.Page,
		TotalPages:  TotalPages(totalCount, c.Limit),
	}
}
