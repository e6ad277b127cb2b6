package catalog

import (
	"strings"

	"github.com/umazing/store-dashboard-bff/internal/models"
)

// FilterProducts is the search box behind the products table: a
// case-insensitive substring match against name or category. It always
// returns a subset of products and never reorders or mutates it.
func FilterProducts(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}

	q := strings.ToLower(query)
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Summary holds the stat-card counters above the products table.
type Summary struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Featured   int `json:"featured"`
	OutOfStock int `json:"outOfStock"`
}

// Summarize recomputes the counters from the given collection. Availability
// is modeled by the inStock/featured booleans; display labels derive from
// them.
func Summarize(products []models.Product) Summary {
	s := Summary{Total: len(products)}
	for _, p := range products {
		if p.InStock {
			s.Active++
		} else {
			s.OutOfStock++
		}
		if p.Featured {
			s.Featured++
		}
	}
	return s
}

// Summary recomputes the counters from the current collection.
func (c *Catalog) Summary() Summary {
	return Summarize(c.Products())
}
