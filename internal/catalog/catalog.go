// Package catalog is the read-only product lookup service. Data is static,
// loaded once at startup, and indexed by display name.
package catalog

import (
	"fmt"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
)

type Group struct {
	Name     string
	Products []domain.Product
}

type Section struct {
	Name   string
	Groups []Group
}

type Catalog struct {
	sections []Section
	join     []domain.Product
	byName   map[string]domain.Product
}

// New indexes the static catalog. Duplicate display names across sections
// are tolerated only when the records agree on price: the first occurrence
// in section order wins. A price conflict is a data-integrity error and
// fails startup rather than silently resolving to one of the two.
func New() (*Catalog, error) {
	c := &Catalog{
		sections: sections,
		join:     joinOptions,
		byName:   make(map[string]domain.Product),
	}
	add := func(p domain.Product) error {
		if prev, ok := c.byName[p.Name]; ok {
			if prev.PriceCents != p.PriceCents {
				return fmt.Errorf("catalog: duplicate product %q with conflicting prices (%d vs %d cents)",
					p.Name, prev.PriceCents, p.PriceCents)
			}
			return nil // exact duplicate, first occurrence wins
		}
		c.byName[p.Name] = p
		return nil
	}
	for _, s := range c.sections {
		for _, g := range s.Groups {
			for _, p := range g.Products {
				if err := add(p); err != nil {
					return nil, err
				}
			}
		}
	}
	for _, p := range c.join {
		if err := add(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Find looks a product up by display name.
func (c *Catalog) Find(name string) (domain.Product, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Sections returns the category tree in fixed order.
func (c *Catalog) Sections() []Section {
	return c.sections
}

// Section returns one category by name.
func (c *Catalog) Section(name string) (Section, bool) {
	for _, s := range c.sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// JoinOptions returns the membership packages.
func (c *Catalog) JoinOptions() []domain.Product {
	return c.join
}
