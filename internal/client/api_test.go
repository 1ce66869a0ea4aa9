package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	api "github.com/rogerio-castellano/product-catalog/internal/http"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/rogerio-castellano/product-catalog/internal/search"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServer(t *testing.T) *Client {
	t.Helper()

	productRepo := repo.NewInMemoryProductRepository()
	for i, price := range []int64{10, 5, 20, 15, 1} {
		productRepo.Add(models.Product{
			ProductID:     i + 1,
			Name:          "Product " + string(rune('A'+i)),
			ProductNumber: "PN-" + string(rune('A'+i)),
			ListPrice:     decimal.NewFromInt(price),
			SellStartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	productRepo.AddInventory(
		models.ProductInventory{ProductID: 1, LocationID: 60, Shelf: "A", Bin: 1, Quantity: 4},
		models.ProductInventory{ProductID: 1, LocationID: 1, Shelf: "B", Bin: 2, Quantity: 6},
	)
	productRepo.AddPriceHistory(
		models.ProductListPriceHistory{ProductID: 1, StartDate: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), ListPrice: decimal.NewFromInt(9)},
		models.ProductListPriceHistory{ProductID: 1, StartDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), ListPrice: decimal.NewFromInt(10)},
	)
	metricsRepo := repo.NewInMemoryMetricsRepository()
	metricsRepo.SetRepositories(productRepo)
	handlers.SetProductRepo(productRepo)
	handlers.SetMetricsRepo(metricsRepo)

	srv := httptest.NewServer(api.NewRouter())
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", srv.Client())
}

func TestClient_ListProducts(t *testing.T) {
	c := newCatalogServer(t)

	res, err := c.ListProducts(context.Background(), Query{Page: 2, Limit: 2, SortBy: search.FieldListPrice, SortDir: search.Asc})

	require.NoError(t, err)
	assert.Equal(t, 5, res.TotalCount)
	assert.Equal(t, 2, res.CurrentPage)
	assert.Equal(t, 3, res.TotalPages)
	require.Len(t, res.Products, 2)
	assert.Equal(t, "10", res.Products[0].ListPrice.String())
	assert.Equal(t, "15", res.Products[1].ListPrice.String())
}

func TestClient_SearchProductsAlias(t *testing.T) {
	c := newCatalogServer(t)

	res, err := c.SearchProducts(context.Background(), Query{Filters: search.Filters{Name: "product c"}})

	require.NoError(t, err)
	require.Len(t, res.Products, 1)
	assert.Equal(t, 3, res.Products[0].ProductID)
}

func TestClient_GetProductNotFound(t *testing.T) {
	c := newCatalogServer(t)

	_, err := c.GetProduct(context.Background(), 9999)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Product not found", apiErr.Message)
}

func TestLoadDetails(t *testing.T) {
	c := newCatalogServer(t)

	d, err := LoadDetails(context.Background(), c, 1)

	require.NoError(t, err)
	assert.Equal(t, "Product A", d.Product.Name)
	require.Len(t, d.Inventory, 2)
	assert.Equal(t, 1, d.Inventory[0].LocationID)
	assert.Equal(t, 10, d.TotalInventory())
	require.Len(t, d.PriceHistory, 2)
	assert.Equal(t, 2022, d.PriceHistory[0].StartDate.Year())
	assert.Equal(t, models.StatusActive, d.Status(time.Now()))
}

type flakySource struct {
	product      error
	inventory    error
	priceHistory error
}

func (f flakySource) GetProduct(_ context.Context, id int) (*models.Product, error) {
	if f.product != nil {
		return nil, f.product
	}
	return &models.Product{ProductID: id, Name: "Frame"}, nil
}

func (f flakySource) GetInventory(_ context.Context, id int) ([]models.ProductInventory, error) {
	if f.inventory != nil {
		return nil, f.inventory
	}
	return []models.ProductInventory{{ProductID: id, Quantity: 3}}, nil
}

func (f flakySource) GetPriceHistory(_ context.Context, id int) ([]models.ProductListPriceHistory, error) {
	if f.priceHistory != nil {
		return nil, f.priceHistory
	}
	return []models.ProductListPriceHistory{{ProductID: id}}, nil
}

func TestLoadDetails_SecondaryFailuresDegrade(t *testing.T) {
	boom := errors.New("boom")

	d, err := LoadDetails(context.Background(), flakySource{inventory: boom, priceHistory: boom}, 7)

	require.NoError(t, err)
	assert.Equal(t, 7, d.Product.ProductID)
	assert.NotNil(t, d.Inventory)
	assert.Empty(t, d.Inventory)
	assert.NotNil(t, d.PriceHistory)
	assert.Empty(t, d.PriceHistory)
	assert.Zero(t, d.TotalInventory())
}

func TestLoadDetails_ProductFailureFails(t *testing.T) {
	boom := errors.New("boom")

	d, err := LoadDetails(context.Background(), flakySource{product: boom}, 7)

	assert.Nil(t, d)
	assert.ErrorIs(t, err, boom)
}

func TestSession_AppliesResponses(t *testing.T) {
	s := NewSession(newCatalogServer(t))

	st := s.ChangePageSize(context.Background(), 2)
	require.NotNil(t, st.Result)
	assert.Equal(t, 3, st.Result.TotalPages)

	st = s.ToggleSort(context.Background(), search.FieldListPrice)
	require.Len(t, st.Result.Products, 2)
	assert.Equal(t, 5, st.Result.Products[0].ProductID)

	st = s.Search(context.Background(), search.Filters{Color: "Red"})
	assert.Empty(t, st.Result.Products)
	assert.Equal(t, 1, st.Result.TotalPages)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
}

// gatedLister answers each listing only when its page is released.
type gatedLister struct {
	mu    sync.Mutex
	gates map[int]chan struct{}
}

func (g *gatedLister) gate(page int) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gates[page] == nil {
		g.gates[page] = make(chan struct{})
	}
	return g.gates[page]
}

func (g *gatedLister) ListProducts(_ context.Context, q Query) (*search.Result, error) {
	<-g.gate(q.Page)
	return &search.Result{Products: []models.Product{}, CurrentPage: q.Page, TotalPages: 9}, nil
}

func TestSession_OutOfOrderResponses(t *testing.T) {
	lister := &gatedLister{gates: map[int]chan struct{}{}}
	s := NewSession(lister)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.ChangePage(context.Background(), 2)
	}()
	require.Eventually(t, func() bool { return s.State().Query.Page == 2 }, time.Second, time.Millisecond)

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.ChangePage(context.Background(), 3)
	}()
	require.Eventually(t, func() bool { return s.State().Query.Page == 3 }, time.Second, time.Millisecond)

	close(lister.gate(3))
	require.Eventually(t, func() bool { return s.State().Result != nil }, time.Second, time.Millisecond)
	close(lister.gate(2))
	wg.Wait()

	st := s.State()
	assert.Equal(t, 3, st.Result.CurrentPage)
	assert.False(t, st.Loading)
}

type failingLister struct{}

func (failingLister) ListProducts(context.Context, Query) (*search.Result, error) {
	return nil, &APIError{StatusCode: http.StatusInternalServerError, Message: "Internal server error"}
}

func TestSession_FailureSetsMessage(t *testing.T) {
	st := NewSession(failingLister{}).Load(context.Background())

	assert.Equal(t, LoadFailedMessage, st.Error)
	assert.Nil(t, st.Result)
	assert.False(t, st.Loading)
}
