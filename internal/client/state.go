// Package client drives a product browser against the catalog API: the query
// state behind search forms and sortable tables, and the detail view loader.
package client

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/product-catalog/internal/search"
)

// LoadFailedMessage is shown while the last product fetch failed.
const LoadFailedMessage = "Failed to load products. Please try again."

// Query is the full set of parameters sent with every listing fetch.
// An empty SortBy leaves ordering to the server.
type Query struct {
	search.Filters
	Page    int
	Limit   int
	SortBy  search.Field
	SortDir search.Direction
}

// Sorted reports whether the query carries an explicit sort.
func (q Query) Sorted() bool {
	return q.SortBy != ""
}

// Values encodes q as query parameters. Empty values are left out.
func (q Query) Values() url.Values {
	v := url.Values{}
	q.Filters.Encode(v)
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Sorted() {
		v.Set("sortBy", string(q.SortBy))
		v.Set("sortDir", string(q.SortDir))
	}
	return v
}

// Fetch asks the caller to load the listing for Query. Seq identifies the
// request when its response comes back.
type Fetch struct {
	Seq   uint64
	Query Query
}

// State is an immutable snapshot of the listing view. Transitions return a new
// State and the single Fetch it requires.
type State struct {
	Query   Query
	Result  *search.Result
	Error   string
	Loading bool

	issued  uint64
	applied uint64
}

// NewState is the initial view: first page, default page size, unsorted.
func NewState() State {
	return State{Query: Query{Page: search.DefaultPage, Limit: search.DefaultLimit}}
}

// Load fetches the current query again.
func (s State) Load() (State, Fetch) {
	return s.fetch()
}

// Search replaces the text filters and goes back to the first page.
// Filter values are trimmed and blank ones dropped.
func (s State) Search(f search.Filters) (State, Fetch) {
	s.Query.Filters = search.Filters{
		Name:          strings.TrimSpace(f.Name),
		ProductNumber: strings.TrimSpace(f.ProductNumber),
		Color:         strings.TrimSpace(f.Color),
		ProductLine:   strings.TrimSpace(f.ProductLine),
		Class:         strings.TrimSpace(f.Class),
		Style:         strings.TrimSpace(f.Style),
		Size:          strings.TrimSpace(f.Size),
	}
	s.Query.Page = search.DefaultPage
	return s.fetch()
}

// Clear drops every text filter and goes back to the first page.
func (s State) Clear() (State, Fetch) {
	s.Query.Filters = search.Filters{}
	s.Query.Page = search.DefaultPage
	return s.fetch()
}

func (s State) ChangePage(page int) (State, Fetch) {
	if page <= 0 {
		page = search.DefaultPage
	}
	s.Query.Page = page
	return s.fetch()
}

// ChangePageSize sets the page size and goes back to the first page.
func (s State) ChangePageSize(limit int) (State, Fetch) {
	if limit <= 0 {
		limit = search.DefaultLimit
	}
	s.Query.Limit = limit
	s.Query.Page = search.DefaultPage
	return s.fetch()
}

// ToggleSort cycles field through ascending, descending and unsorted.
// Another column always starts ascending.
func (s State) ToggleSort(field search.Field) (State, Fetch) {
	switch {
	case s.Query.SortBy != field:
		s.Query.SortBy, s.Query.SortDir = field, search.Asc
	case s.Query.SortDir == search.Asc:
		s.Query.SortDir = search.Desc
	default:
		s.Query.SortBy, s.Query.SortDir = "", ""
	}
	s.Query.Page = search.DefaultPage
	return s.fetch()
}

// Receive applies the response to the fetch numbered seq. Responses older than
// one already applied are ignored, so the last issued fetch wins. A failure
// keeps the previous result on screen.
func (s State) Receive(seq uint64, result *search.Result, err error) State {
	if seq <= s.applied || seq > s.issued {
		return s
	}
	s.applied = seq
	s.Loading = seq < s.issued

	if err != nil {
		s.Error = LoadFailedMessage
		return s
	}
	s.Error = ""
	s.Result = result
	return s
}

// Pending reports whether a newer fetch than the one on screen is in flight.
func (s State) Pending() bool {
	return s.applied < s.issued
}

func (s State) fetch() (State, Fetch) {
	s.issued++
	s.Loading = true
	return s, Fetch{Seq: s.issued, Query: s.Query}
}
