package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/rogerio-castellano/product-catalog/docs"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	mw "github.com/rogerio-castellano/product-catalog/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter wires the catalog routes. Extra middlewares, such as rate limiting,
// run after panic recovery and request logging.
func NewRouter(middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(mw.Recover)
	r.Use(mw.LogRequests(nil, "/health", "/ready"))

	r.Get("/health", handlers.HealthHandler)
	r.Get("/ready", handlers.ReadyHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(middlewares...)

		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/search", handlers.GetProductsHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Get("/products/{id}/inventory", handlers.GetProductInventoryHandler)
		r.Get("/products/{id}/price-history", handlers.GetProductPriceHistoryHandler)

		r.Get("/metrics/catalog", handlers.GetCatalogMetricsHandler)
	})

	return r
}
