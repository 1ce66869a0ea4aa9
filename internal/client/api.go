package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/search"
)

// APIError is returned for any non-2xx answer of the catalog API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("catalog api: %d %s", e.StatusCode, e.Message)
}

// Client talks to the catalog REST API rooted at a base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for baseURL. A nil httpClient gets a 10 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

func (c *Client) ListProducts(ctx context.Context, q Query) (*search.Result, error) {
	var res search.Result
	if err := c.get(ctx, "/products", q.Values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SearchProducts uses the /products/search alias of ListProducts.
func (c *Client) SearchProducts(ctx context.Context, q Query) (*search.Result, error) {
	var res search.Result
	if err := c.get(ctx, "/products/search", q.Values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	if err := c.get(ctx, "/products/"+strconv.Itoa(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) GetInventory(ctx context.Context, id int) ([]models.ProductInventory, error) {
	var rows []models.ProductInventory
	if err := c.get(ctx, "/products/"+strconv.Itoa(id)+"/inventory", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetPriceHistory(ctx context.Context, id int) ([]models.ProductListPriceHistory, error) {
	var rows []models.ProductListPriceHistory
	if err := c.get(ctx, "/products/"+strconv.Itoa(id)+"/price-history", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body struct {
			Error string `json:"error"`
		}
		if data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); err == nil && json.Unmarshal(data, &body) == nil {
			apiErr.Message = body.Error
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
