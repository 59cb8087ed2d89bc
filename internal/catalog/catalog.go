package catalog

import (
	"fmt"
)

// DefaultPageSize is the number of venues shown per page of the cafe list.
const DefaultPageSize = 3

// Item describes a single selectable venue. Items are immutable once loaded.
type Item struct {
	ID          string `yaml:"id" db:"id"`
	Name        string `yaml:"name" db:"name"`
	Description string `yaml:"description" db:"description"`
	OpensAt     string `yaml:"opens_at" db:"opens_at"`
	ClosesAt    string `yaml:"closes_at" db:"closes_at"`
	Phone       string `yaml:"phone" db:"phone"`
	Link        string `yaml:"link" db:"link"`
}

// Catalog holds an ordered, read-only collection of venues grouped into
// fixed-size pages. It is loaded once at startup and never mutated.
type Catalog struct {
	items    []Item
	pageSize int
	byID     map[string]int
}

// New validates the item list and builds a catalog with the given page size.
// A pageSize <= 0 falls back to DefaultPageSize.
func New(items []Item, pageSize int) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog: no items provided")
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	byID := make(map[string]int, len(items))
	for i, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("catalog: item %d has empty id", i)
		}
		if _, dup := byID[it.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate item id %q", it.ID)
		}
		byID[it.ID] = i
	}

	c := &Catalog{
		items:    make([]Item, len(items)),
		pageSize: pageSize,
		byID:     byID,
	}
	copy(c.items, items)
	return c, nil
}

// Len returns the total number of venues.
func (c *Catalog) Len() int {
	return len(c.items)
}

// PageSize returns the number of venues per page.
func (c *Catalog) PageSize() int {
	return c.pageSize
}

// PageCount returns the number of pages the venue list occupies.
func (c *Catalog) PageCount() int {
	return (len(c.items) + c.pageSize - 1) / c.pageSize
}

// Page returns the venues of the given 1-based page in catalog order.
// Pages outside [1, PageCount] yield nil.
func (c *Catalog) Page(n int) []Item {
	if n < 1 || n > c.PageCount() {
		return nil
	}
	lo := (n - 1) * c.pageSize
	hi := lo + c.pageSize
	if hi > len(c.items) {
		hi = len(c.items)
	}
	out := make([]Item, hi-lo)
	copy(out, c.items[lo:hi])
	return out
}

// ItemByID looks a venue up by its callback token.
func (c *Catalog) ItemByID(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Items returns a copy of the full ordered venue list.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}
