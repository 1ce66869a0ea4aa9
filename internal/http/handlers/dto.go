package handlers

import "github.com/rogerio-castellano/product-catalog/internal/search"

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProductsSearchResult is the paginated product listing.
type ProductsSearchResult = search.Result

type StatusResponse struct {
	Status string `json:"status"`
}
