package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
)

var (
	productRepo *repo.InMemoryProductRepository
	metricsRepo *repo.InMemoryMetricsRepository
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	metricsRepo = repo.NewInMemoryMetricsRepository()
	metricsRepo.SetRepositories(productRepo)
	handler.SetMetricsRepo(metricsRepo)

	handler.SetReadinessCheck(nil)
}

func clearAllProducts() {
	productRepo.Clear()
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func newProduct(id int, name string, price int64) models.Product {
	return models.Product{
		ProductID:     id,
		Name:          name,
		ProductNumber: "PN-" + name,
		ListPrice:     decimal.NewFromInt(price),
		StandardCost:  decimal.NewFromInt(price / 2),
		SellStartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		ModifiedDate:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// seedPricedCatalog adds five products priced 10, 5, 20, 15 and 1.
func seedPricedCatalog() {
	for i, price := range []int64{10, 5, 20, 15, 1} {
		productRepo.Add(newProduct(i+1, string(rune('A'+i))+" Product", price))
	}
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return v
}

func prices(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ListPrice.String()
	}
	return out
}
