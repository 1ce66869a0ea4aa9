package repo

import (
	"testing"

	"github.com/rogerio-castellano/product-catalog/internal/search"
	"github.com/stretchr/testify/assert"
)

func TestFilterConditions(t *testing.T) {
	query, args, next := filterConditions(search.Filters{Name: "Road", Color: "Red", Size: "5"})

	assert.Equal(t, ` AND "name" ILIKE $1 AND "color" ILIKE $2 AND "size" ILIKE $3`, query)
	assert.Equal(t, []any{"%Road%", "%Red%", "%5%"}, args)
	assert.Equal(t, 4, next)
}

func TestFilterConditions_None(t *testing.T) {
	query, args, next := filterConditions(search.Filters{})

	assert.Empty(t, query)
	assert.Empty(t, args)
	assert.Equal(t, 1, next)
}

func TestFilterConditions_EscapesWildcards(t *testing.T) {
	_, args, _ := filterConditions(search.Filters{Name: `50%_off\`})

	assert.Equal(t, []any{`%50\%\_off\\%`}, args)
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		by   search.Field
		dir  search.Direction
		want string
	}{
		{search.FieldName, search.Asc, ` ORDER BY lower("name") ASC, "productid" ASC`},
		{search.FieldListPrice, search.Desc, ` ORDER BY "listprice" DESC, "productid" ASC`},
		{search.FieldSellStartDate, search.Asc, ` ORDER BY "sellstartdate" ASC, "productid" ASC`},
		{search.FieldStyle, search.Asc, ` ORDER BY lower("name") ASC, "productid" ASC`},
		{search.Field(`name; DROP TABLE x`), search.Desc, ` ORDER BY lower("name") DESC, "productid" ASC`},
	}

	for _, tt := range tests {
		t.Run(string(tt.by), func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.by, tt.dir))
		})
	}
}
