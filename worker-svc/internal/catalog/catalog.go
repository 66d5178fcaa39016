// Package catalog holds the product list for a session and answers the
// category > subcategory > thickness > size drill-down plus free-text search.
package catalog

import (
	"strings"
)

type Item struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Thickness   string `json:"thickness"`
	Size        string `json:"size"`
	Unit        string `json:"unit"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Key identifies a catalog item by its four descriptive fields. A struct key
// cannot collide the way delimiter-joined strings can.
type Key struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Thickness   string `json:"thickness"`
	Size        string `json:"size"`
}

func (i Item) Key() Key {
	return Key{Category: i.Category, Subcategory: i.Subcategory, Thickness: i.Thickness, Size: i.Size}
}

// DisplayName is the flattened full-path label used in search results and
// the cart.
func (k Key) DisplayName() string {
	return k.Category + " > " + k.Subcategory + " > " + k.Thickness + " > " + k.Size
}

// Path is a partial drill-down selection. Empty fields are "not chosen yet".
type Path struct {
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Thickness   string `json:"thickness,omitempty"`
}

// Depth is the number of levels already chosen, 0..3.
func (p Path) Depth() int {
	switch {
	case p.Category == "":
		return 0
	case p.Subcategory == "":
		return 1
	case p.Thickness == "":
		return 2
	default:
		return 3
	}
}

// Truncate cuts the selection back to depth levels, the breadcrumb behavior.
func (p Path) Truncate(depth int) Path {
	if depth < 3 {
		p.Thickness = ""
	}
	if depth < 2 {
		p.Subcategory = ""
	}
	if depth < 1 {
		p.Category = ""
	}
	return p
}

func (p Path) matches(item Item) bool {
	if p.Category != "" && item.Category != p.Category {
		return false
	}
	if p.Subcategory != "" && item.Subcategory != p.Subcategory {
		return false
	}
	if p.Thickness != "" && item.Thickness != p.Thickness {
		return false
	}
	return true
}

type Index struct {
	items []Item
}

func NewIndex(items []Item) *Index {
	copied := make([]Item, len(items))
	copy(copied, items)
	return &Index{items: copied}
}

func (idx *Index) Len() int {
	return len(idx.items)
}

func (idx *Index) Categories() []string {
	return distinct(idx.items, Path{}, func(item Item) string { return item.Category })
}

func (idx *Index) Subcategories(category string) []string {
	return distinct(idx.items, Path{Category: category}, func(item Item) string { return item.Subcategory })
}

func (idx *Index) Thicknesses(category, subcategory string) []string {
	path := Path{Category: category, Subcategory: subcategory}
	return distinct(idx.items, path, func(item Item) string { return item.Thickness })
}

func (idx *Index) Sizes(category, subcategory, thickness string) []string {
	path := Path{Category: category, Subcategory: subcategory, Thickness: thickness}
	return distinct(idx.items, path, func(item Item) string { return item.Size })
}

// Filter returns the items under a full or partial selection path, in load
// order.
func (idx *Index) Filter(path Path) []Item {
	matched := []Item{}
	for _, item := range idx.items {
		if path.matches(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Search bypasses the hierarchy: case-insensitive substring match against the
// string form of every field.
func (idx *Index) Search(term string) []Item {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return idx.Filter(Path{})
	}

	matched := []Item{}
	for _, item := range idx.items {
		fields := []string{item.Category, item.Subcategory, item.Thickness, item.Size, item.Unit, item.ImageURL}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field), term) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// Lookup finds the catalog item for a key, or false when the key does not
// exist (manual cart entries never do).
func (idx *Index) Lookup(key Key) (Item, bool) {
	for _, item := range idx.items {
		if item.Key() == key {
			return item, true
		}
	}
	return Item{}, false
}

// distinct collects unique values in first-seen order from items matching
// the path.
func distinct(items []Item, path Path, field func(Item) string) []string {
	seen := make(map[string]bool)
	values := []string{}
	for _, item := range items {
		if !path.matches(item) {
			continue
		}
		value := field(item)
		if seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}
	return values
}
