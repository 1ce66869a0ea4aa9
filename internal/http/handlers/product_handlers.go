package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	repo "github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/rogerio-castellano/product-catalog/internal/search"
)

// GetProductsHandler godoc
// @Summary Search, sort and paginate products
// @Description Text filters are case-insensitive substring matches combined with AND. Malformed paging or sorting input falls back to defaults.
// @Tags products
// @Produce json
// @Param name query string false "Name contains"
// @Param productNumber query string false "Product number contains"
// @Param color query string false "Color contains"
// @Param productLine query string false "Product line contains"
// @Param class query string false "Class contains"
// @Param style query string false "Style contains"
// @Param size query string false "Size contains"
// @Param page query int false "1-based page (default 1)"
// @Param limit query int false "Page size (default 25)"
// @Param sortBy query string false "Sort column" Enums(ProductID, Name, ProductNumber, Color, ListPrice, Size, Weight, SellStartDate)
// @Param sortDir query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} ProductsSearchResult
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
// @Router /products/search [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	criteria := search.Normalize(search.FromQuery(r.URL.Query()))

	products, total, err := productRepo.Search(r.Context(), criteria)
	if err != nil {
		internalError(w, r, "failed to search products", err)
		return
	}

	respond(w, r, http.StatusOK, search.Assemble(products, total, criteria))
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		internalError(w, r, "failed to fetch product", err)
		return
	}

	respond(w, r, http.StatusOK, product)
}

// GetProductInventoryHandler godoc
// @Summary Inventory of a product
// @Description Rows are ordered by location, shelf and bin. Unknown products have no rows.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} models.ProductInventory
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /products/{id}/inventory [get]
func GetProductInventoryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	inventory, err := productRepo.GetInventory(r.Context(), id)
	if err != nil {
		internalError(w, r, "failed to fetch product inventory", err)
		return
	}

	respond(w, r, http.StatusOK, inventory)
}

// GetProductPriceHistoryHandler godoc
// @Summary List price history of a product
// @Description Most recent StartDate first. Unknown products have no rows.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} models.ProductListPriceHistory
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /products/{id}/price-history [get]
func GetProductPriceHistoryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	history, err := productRepo.GetPriceHistory(r.Context(), id)
	if err != nil {
		internalError(w, r, "failed to fetch product price history", err)
		return
	}

	respond(w, r, http.StatusOK, history)
}

func productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID")
		return 0, false
	}
	return id, true
}
