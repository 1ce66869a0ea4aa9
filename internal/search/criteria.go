// Package search holds the query contract shared by the API and its clients:
// criteria normalization, substring filtering, ordering, paging and the result envelope.
package search

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 25
)

// Field names a product attribute that can be filtered or sorted on.
type Field string

const (
	FieldProductID     Field = "ProductID"
	FieldName          Field = "Name"
	FieldProductNumber Field = "ProductNumber"
	FieldColor         Field = "Color"
	FieldListPrice     Field = "ListPrice"
	FieldSize          Field = "Size"
	FieldWeight        Field = "Weight"
	FieldSellStartDate Field = "SellStartDate"
	FieldProductLine   Field = "ProductLine"
	FieldClass         Field = "Class"
	FieldStyle         Field = "Style"
)

// DefaultSort is used whenever sortBy is missing or not sortable.
const DefaultSort = FieldName

var sortable = map[Field]bool{
	FieldProductID:     true,
	FieldName:          true,
	FieldProductNumber: true,
	FieldColor:         true,
	FieldListPrice:     true,
	FieldSize:          true,
	FieldWeight:        true,
	FieldSellStartDate: true,
}

// Sortable reports whether results can be ordered by f.
func (f Field) Sortable() bool {
	return sortable[f]
}

// SortableFields lists the accepted sortBy values in display order.
func SortableFields() []Field {
	return []Field{
		FieldProductID, FieldName, FieldProductNumber, FieldColor,
		FieldListPrice, FieldSize, FieldWeight, FieldSellStartDate,
	}
}

// Direction is the sort direction of a query.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Filters are the optional substring filters of a query. Empty strings mean "not provided".
type Filters struct {
	Name          string `json:"name,omitempty"`
	ProductNumber string `json:"productNumber,omitempty"`
	Color         string `json:"color,omitempty"`
	ProductLine   string `json:"productLine,omitempty"`
	Class         string `json:"class,omitempty"`
	Style         string `json:"style,omitempty"`
	Size          string `json:"size,omitempty"`
}

// Term is a single provided filter.
type Term struct {
	Field Field
	Value string
}

// Terms returns the provided filters in a fixed order.
func (f Filters) Terms() []Term {
	all := []Term{
		{FieldName, f.Name},
		{FieldProductNumber, f.ProductNumber},
		{FieldColor, f.Color},
		{FieldProductLine, f.ProductLine},
		{FieldClass, f.Class},
		{FieldStyle, f.Style},
		{FieldSize, f.Size},
	}
	terms := all[:0]
	for _, t := range all {
		if t.Value != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// Empty reports whether no filter is provided.
func (f Filters) Empty() bool {
	return len(f.Terms()) == 0
}

// Encode sets every provided filter on v under its query parameter name.
func (f Filters) Encode(v url.Values) {
	for _, t := range f.Terms() {
		v.Set(paramName(t.Field), t.Value)
	}
}

func paramName(f Field) string {
	s := string(f)
	return strings.ToLower(s[:1]) + s[1:]
}

// RawCriteria is a query exactly as it arrived on the wire.
type RawCriteria struct {
	Filters
	Page    string
	Limit   string
	SortBy  string
	SortDir string
}

// FromQuery reads the search parameters of a request query string.
func FromQuery(q url.Values) RawCriteria {
	return RawCriteria{
		Filters: Filters{
			Name:          q.Get("name"),
			ProductNumber: q.Get("productNumber"),
			Color:         q.Get("color"),
			ProductLine:   q.Get("productLine"),
			Class:         q.Get("class"),
			Style:         q.Get("style"),
			Size:          q.Get("size"),
		},
		Page:    q.Get("page"),
		Limit:   q.Get("limit"),
		SortBy:  q.Get("sortBy"),
		SortDir: q.Get("sortDir"),
	}
}

// Criteria is a canonical query: page and limit are positive, SortBy is sortable
// and SortDir is Asc or Desc.
type Criteria struct {
	Filters
	Page    int
	Limit   int
	SortBy  Field
	SortDir Direction
}

// Normalize turns raw input into canonical criteria. It never fails: anything
// unusable falls back to its default.
func Normalize(raw RawCriteria) Criteria {
	return Criteria{
		Filters: raw.Filters,
		Page:    parsePositive(raw.Page, DefaultPage),
		Limit:   parsePositive(raw.Limit, DefaultLimit),
		SortBy:  Field(raw.SortBy),
		SortDir: Direction(raw.SortDir),
	}.Normalize()
}

// Normalize coerces c into canonical form. Canonical criteria are returned unchanged.
func (c Criteria) Normalize() Criteria {
	if c.Page <= 0 {
		c.Page = DefaultPage
	}
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	if !c.SortBy.Sortable() {
		c.SortBy = DefaultSort
	}
	if c.SortDir != Desc {
		c.SortDir = Asc
	}
	return c
}

// Offset is the number of matching rows before the requested page. Check
// PastEnd first: the product overflows for pages far beyond the last one.
func (c Criteria) Offset() int {
	return (c.Page - 1) * c.Limit
}

// PastEnd reports whether the requested page starts after the last of total
// matching rows. It never overflows.
func (c Criteria) PastEnd(total int) bool {
	c = c.Normalize()
	return total <= 0 || c.Page-1 > (total-1)/c.Limit
}

// parsePositive reads the leading base-10 integer of s, so "2.5" is 2 and
// "3abc" is 3. Input without one, or a result below 1, gives def. Values too
// large for an int saturate.
func parsePositive(s string, def int) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return def
	}

	v, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) && s[0] != '-' {
		v, err = math.MaxInt, nil
	}
	if err != nil || v <= 0 {
		return def
	}
	return v
}
