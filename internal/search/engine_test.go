package search

import (
	"math"
	"testing"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func product(id int, name string, price int64) models.Product {
	return models.Product{
		ProductID:     id,
		Name:          name,
		ProductNumber: "PN-" + name,
		ListPrice:     decimal.NewFromInt(price),
		SellStartDate: time.Date(2020, 1, id, 0, 0, 0, 0, time.UTC),
	}
}

func ids(products []models.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ProductID
	}
	return out
}

func TestApply_PriceAscendingSecondPage(t *testing.T) {
	catalog := []models.Product{
		product(1, "A", 10),
		product(2, "B", 5),
		product(3, "C", 20),
		product(4, "D", 15),
		product(5, "E", 1),
	}
	c := Normalize(RawCriteria{Limit: "2", Page: "2", SortBy: "ListPrice", SortDir: "asc"})

	page, total := Apply(catalog, c)
	res := Assemble(page, total, c)

	require.Len(t, res.Products, 2)
	assert.True(t, res.Products[0].ListPrice.Equal(decimal.NewFromInt(10)))
	assert.True(t, res.Products[1].ListPrice.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, 5, res.TotalCount)
	assert.Equal(t, 2, res.CurrentPage)
	assert.Equal(t, 3, res.TotalPages)
}

func TestApply_NoMatches(t *testing.T) {
	catalog := []models.Product{product(1, "A", 1), product(2, "B", 2)}
	catalog[0].Color = str("Black")
	c := Normalize(RawCriteria{Filters: Filters{Color: "Red"}})

	page, total := Apply(catalog, c)
	res := Assemble(page, total, c)

	assert.NotNil(t, res.Products)
	assert.Empty(t, res.Products)
	assert.Equal(t, 0, res.TotalCount)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, 1, res.TotalPages)
}

func TestApply_NonPositiveLimitActsAsDefault(t *testing.T) {
	catalog := make([]models.Product, 30)
	for i := range catalog {
		catalog[i] = product(i+1, "P", int64(i))
	}

	for _, limit := range []int{0, -1, -25} {
		page, total := Apply(catalog, Criteria{Page: 1, Limit: limit})
		assert.Len(t, page, 25)
		assert.Equal(t, 30, total)
	}
}

func TestApply_NonPositivePageActsAsFirst(t *testing.T) {
	catalog := []models.Product{product(1, "A", 1), product(2, "B", 2), product(3, "C", 3)}

	first, _ := Apply(catalog, Criteria{Page: 1, Limit: 2})
	for _, page := range []int{0, -3} {
		got, _ := Apply(catalog, Criteria{Page: page, Limit: 2})
		assert.Equal(t, ids(first), ids(got))
	}
}

func TestApply_PageBeyondLast(t *testing.T) {
	catalog := []models.Product{product(1, "A", 1), product(2, "B", 2), product(3, "C", 3)}
	c := Criteria{Page: 9, Limit: 2}

	page, total := Apply(catalog, c)
	res := Assemble(page, total, c)

	assert.Empty(t, res.Products)
	assert.NotNil(t, res.Products)
	assert.Equal(t, 3, res.TotalCount)
	assert.Equal(t, 9, res.CurrentPage)
	assert.Equal(t, 2, res.TotalPages)

	huge := Normalize(RawCriteria{Page: "368934881474191034", Limit: "25"})
	page, total = Apply(catalog, huge)
	assert.NotNil(t, page)
	assert.Empty(t, page)
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, Assemble(page, total, huge).TotalPages)

	page, total = Apply(catalog, Criteria{Page: math.MaxInt, Limit: math.MaxInt})
	assert.Empty(t, page)
	assert.Equal(t, 3, total)
}

func TestApply_LargestLimitReturnsEverything(t *testing.T) {
	catalog := []models.Product{product(1, "A", 1), product(2, "B", 2), product(3, "C", 3)}
	c := Criteria{Page: 1, Limit: math.MaxInt}

	page, total := Apply(catalog, c)

	assert.Equal(t, []int{1, 2, 3}, ids(page))
	assert.Equal(t, 1, Assemble(page, total, c).TotalPages)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 25, 1},
		{1, 25, 1},
		{25, 25, 1},
		{26, 25, 2},
		{5, 2, 3},
		{100, 10, 10},
		{7, 0, 1},
		{5, math.MaxInt, 1},
		{math.MaxInt, 1, math.MaxInt},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestFilter_AndCombined(t *testing.T) {
	a := product(1, "Road Frame", 1)
	a.Color = str("Red")
	a.Size = str("58")
	b := product(2, "Road Tire", 1)
	b.Color = str("Black")
	b.Size = str("58")
	c := product(3, "Mountain Frame", 1)
	c.Color = str("Red")

	got := Filter([]models.Product{a, b, c}, Filters{Name: "frame", Color: "red", Size: "5"})

	assert.Equal(t, []int{1}, ids(got))
}

func TestFilter_NullAttributeNeverMatches(t *testing.T) {
	withStyle := product(1, "Jersey", 1)
	withStyle.Style = str("U")
	noStyle := product(2, "Jersey", 1)

	got := Filter([]models.Product{withStyle, noStyle}, Filters{Style: "U"})
	assert.Equal(t, []int{1}, ids(got))

	got = Filter([]models.Product{withStyle, noStyle}, Filters{})
	assert.Equal(t, []int{1, 2}, ids(got))
}

func TestFilter_LiteralSubstring(t *testing.T) {
	a := product(1, "100% Cotton", 1)
	b := product(2, "1000 Cotton", 1)

	got := Filter([]models.Product{a, b}, Filters{Name: "0% C"})
	assert.Equal(t, []int{1}, ids(got))
}

func TestOrder_TieBreakOnProductID(t *testing.T) {
	catalog := []models.Product{
		product(4, "Same", 7),
		product(2, "Same", 7),
		product(3, "Other", 1),
		product(1, "Same", 7),
	}

	asc := Order(catalog, FieldListPrice, Asc)
	assert.Equal(t, []int{3, 1, 2, 4}, ids(asc))

	desc := Order(catalog, FieldListPrice, Desc)
	assert.Equal(t, []int{1, 2, 4, 3}, ids(desc))
}

func TestOrder_NullsLastAscendingFirstDescending(t *testing.T) {
	a := product(1, "A", 1)
	a.Color = str("blue")
	b := product(2, "B", 1)
	c := product(3, "C", 1)
	c.Color = str("Azure")

	assert.Equal(t, []int{3, 1, 2}, ids(Order([]models.Product{a, b, c}, FieldColor, Asc)))
	assert.Equal(t, []int{2, 1, 3}, ids(Order([]models.Product{a, b, c}, FieldColor, Desc)))
}

func TestOrder_WeightAndDates(t *testing.T) {
	a := product(1, "A", 1)
	a.Weight = decimal.NewNullDecimal(decimal.RequireFromString("2.50"))
	b := product(2, "B", 1)
	b.Weight = decimal.NewNullDecimal(decimal.RequireFromString("1.25"))
	c := product(3, "C", 1)

	assert.Equal(t, []int{2, 1, 3}, ids(Order([]models.Product{a, b, c}, FieldWeight, Asc)))
	assert.Equal(t, []int{3, 2, 1}, ids(Order([]models.Product{a, b, c}, FieldSellStartDate, Desc)))
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	catalog := []models.Product{product(2, "B", 1), product(1, "A", 1)}

	_ = Order(catalog, FieldName, Asc)

	assert.Equal(t, []int{2, 1}, ids(catalog))
}
