// Package catalog is the read-only product source the core materializes
// items from. The core never mutates catalog data.
package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
)

// Catalog serves product lookups over a fixed in-memory set.
type Catalog struct {
	products []model.Product
	byID     map[uuid.UUID]int
}

// New builds a catalog over the given products.
func New(products []model.Product) *Catalog {
	c := &Catalog{
		products: append([]model.Product(nil), products...),
		byID:     make(map[uuid.UUID]int, len(products)),
	}
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

// Filter narrows a product listing. Zero values mean "no constraint".
type Filter struct {
	Query    string  // substring match over name, category, brand
	Category string  // exact category
	Brand    string  // exact brand
	MinPrice float64 // inclusive
	MaxPrice float64 // inclusive; 0 = unbounded
}

// List returns the products matching the filter, in catalog order.
func (c *Catalog) List(f Filter) []model.Product {
	q := strings.ToLower(f.Query)
	out := []model.Product{}
	for _, p := range c.products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		if p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get returns one product by id.
func (c *Catalog) Get(id uuid.UUID) (model.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i], true
}
