package search

import (
	"strings"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// Match reports whether p satisfies every provided filter. Matching is a
// case-insensitive substring test; a null attribute never matches.
func (f Filters) Match(p models.Product) bool {
	for _, t := range f.Terms() {
		if !contains(Attribute(p, t.Field), t.Value) {
			return false
		}
	}
	return true
}

// Filter returns the products matching f, in their original order.
func Filter(products []models.Product, f Filters) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Attribute returns the text value of a filterable attribute, or nil when it is null
// or the field is not textual.
func Attribute(p models.Product, f Field) *string {
	switch f {
	case FieldName:
		return &p.Name
	case FieldProductNumber:
		return &p.ProductNumber
	case FieldColor:
		return p.Color
	case FieldProductLine:
		return p.ProductLine
	case FieldClass:
		return p.Class
	case FieldStyle:
		return p.Style
	case FieldSize:
		return p.Size
	}
	return nil
}

func contains(attr *string, want string) bool {
	if want == "" {
		return true
	}
	if attr == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*attr), strings.ToLower(want))
}
