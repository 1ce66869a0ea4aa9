package repo

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/rogerio-castellano/product-catalog/internal/search"
)

// columns maps query fields to production.product columns.
var columns = map[search.Field]string{
	search.FieldProductID:     "productid",
	search.FieldName:          "name",
	search.FieldProductNumber: "productnumber",
	search.FieldColor:         "color",
	search.FieldListPrice:     "listprice",
	search.FieldSize:          "size",
	search.FieldWeight:        "weight",
	search.FieldSellStartDate: "sellstartdate",
	search.FieldProductLine:   "productline",
	search.FieldClass:         "class",
	search.FieldStyle:         "style",
}

// textFields sort through lower() so ordering does not depend on the column collation.
var textFields = map[search.Field]bool{
	search.FieldName:          true,
	search.FieldProductNumber: true,
	search.FieldColor:         true,
	search.FieldSize:          true,
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// filterConditions renders the provided filters as ILIKE predicates starting at $1.
// It returns the clause, its arguments and the next free placeholder index.
func filterConditions(f search.Filters) (string, []any, int) {
	query := ""
	argIdx := 1
	args := []any{}

	for _, t := range f.Terms() {
		query += fmt.Sprintf(" AND %s ILIKE $%d", pq.QuoteIdentifier(columns[t.Field]), argIdx)
		args = append(args, "%"+likeEscaper.Replace(t.Value)+"%")
		argIdx++
	}

	return query, args, argIdx
}

// orderClause orders by a whitelisted column, breaking ties on productid.
func orderClause(by search.Field, dir search.Direction) string {
	if !by.Sortable() {
		by = search.DefaultSort
	}
	col := pq.QuoteIdentifier(columns[by])
	if textFields[by] {
		col = "lower(" + col + ")"
	}
	direction := "ASC"
	if dir == search.Desc {
		direction = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, %s ASC", col, direction, pq.QuoteIdentifier(columns[search.FieldProductID]))
}
