package filter

import (
	"sort"
	"strings"

	"github.com/mobimart/mobimart-backend/internal/catalog"
	"github.com/mobimart/mobimart-backend/pkg/enums"
)

// Engine narrows and orders product lists entirely in memory. It never
// mutates its inputs; every method returns a fresh slice.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Filter returns the products matching every populated criterion.
// Empty criteria match everything.
func (e *Engine) Filter(products []catalog.Product, c catalog.Criteria) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p catalog.Product, c catalog.Criteria) bool {
	if len(c.Brands) > 0 && !containsFold(c.Brands, p.Brand) {
		return false
	}
	if len(c.Categories) > 0 && !containsFold(c.Categories, p.Category) {
		return false
	}
	if c.PriceRange != nil {
		if p.Price < c.PriceRange.Min || p.Price > c.PriceRange.Max {
			return false
		}
	}
	if len(c.RAM) > 0 && !containsFold(c.RAM, p.Specs.RAM) {
		return false
	}
	if len(c.Storage) > 0 && !containsFold(c.Storage, p.Specs.Storage) {
		return false
	}
	if c.InStockOnly && !p.InStock {
		return false
	}
	return true
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

// Search returns products whose name, brand or category contains the
// query, case-insensitively. A blank query matches everything. Input
// order is preserved.
func (e *Engine) Search(products []catalog.Product, query string) []catalog.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]catalog.Product, len(products))
		copy(out, products)
		return out
	}
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// Sort returns the products ordered by key. Sorting is stable, so
// equal elements keep their relative input order. Unknown keys, like
// SortFeatured, leave the order untouched.
func (e *Engine) Sort(products []catalog.Product, key enums.SortKey) []catalog.Product {
	out := make([]catalog.Product, len(products))
	copy(out, products)

	switch key {
	case enums.SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case enums.SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case enums.SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case enums.SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	}
	return out
}
