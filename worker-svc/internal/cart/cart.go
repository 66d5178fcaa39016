// Package cart implements the requisition cart and the return cart. Lines
// keep insertion order; a quantity of zero means the line is gone.
package cart

import (
	"errors"

	"github.com/google/uuid"

	"sitesupply/worker-svc/internal/catalog"
)

var (
	ErrManualItemIncomplete = errors.New("品項名稱、單位與數量皆為必填，數量需大於 0")
	ErrReturnItemIncomplete = errors.New("請選擇一個品項並輸入大於 0 的數量")
)

// Line is one cart entry. Catalog lines carry the item's descriptive fields;
// manual lines carry a free-text name in Subcategory plus their own unit.
type Line struct {
	ID          string `json:"id"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory"`
	Thickness   string `json:"thickness,omitempty"`
	Size        string `json:"size,omitempty"`
	Unit        string `json:"unit"`
	Quantity    int    `json:"quantity"`
	Manual      bool   `json:"isManual,omitempty"`
}

func (l Line) key() catalog.Key {
	return catalog.Key{Category: l.Category, Subcategory: l.Subcategory, Thickness: l.Thickness, Size: l.Size}
}

type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// SetQuantity reconciles one catalog line: n <= 0 removes, n > 0 inserts a
// copy of the item or replaces the existing quantity. Returns false when the
// key is unknown to the catalog and nothing was in the cart to remove.
func (c *Cart) SetQuantity(idx *catalog.Index, key catalog.Key, quantity int) bool {
	pos := c.findKey(key)

	if quantity <= 0 {
		if pos >= 0 {
			c.lines = append(c.lines[:pos], c.lines[pos+1:]...)
		}
		return true
	}

	if pos >= 0 {
		c.lines[pos].Quantity = quantity
		return true
	}

	item, ok := idx.Lookup(key)
	if !ok {
		return false
	}
	c.lines = append(c.lines, Line{
		ID:          uuid.NewString(),
		Category:    item.Category,
		Subcategory: item.Subcategory,
		Thickness:   item.Thickness,
		Size:        item.Size,
		Unit:        item.Unit,
		Quantity:    quantity,
	})
	return true
}

// Adjust is the +/- button: current quantity plus delta, current being zero
// when the line is absent.
func (c *Cart) Adjust(idx *catalog.Index, key catalog.Key, delta int) bool {
	return c.SetQuantity(idx, key, c.Quantity(key)+delta)
}

func (c *Cart) Quantity(key catalog.Key) int {
	if pos := c.findKey(key); pos >= 0 {
		return c.lines[pos].Quantity
	}
	return 0
}

// AddManual appends a free-text line that bypasses catalog identity. Name,
// unit and a positive quantity are all required.
func (c *Cart) AddManual(name, unit string, quantity int) error {
	if name == "" || unit == "" || quantity <= 0 {
		return ErrManualItemIncomplete
	}
	c.lines = append(c.lines, Line{
		ID:          "manual-" + uuid.NewString(),
		Subcategory: name,
		Unit:        unit,
		Quantity:    quantity,
		Manual:      true,
	})
	return nil
}

func (c *Cart) RemoveByID(id string) {
	for pos, line := range c.lines {
		if line.ID == id {
			c.lines = append(c.lines[:pos], c.lines[pos+1:]...)
			return
		}
	}
}

func (c *Cart) Lines() []Line {
	copied := make([]Line, len(c.lines))
	copy(copied, c.lines)
	return copied
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) findKey(key catalog.Key) int {
	for pos, line := range c.lines {
		if !line.Manual && line.key() == key {
			return pos
		}
	}
	return -1
}

// ReturnLine has no catalog linkage: the name is free text, the reason
// optional.
type ReturnLine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason,omitempty"`
}

type ReturnCart struct {
	lines []ReturnLine
}

func NewReturnCart() *ReturnCart {
	return &ReturnCart{}
}

func (c *ReturnCart) Add(name string, quantity int, reason string) (ReturnLine, error) {
	if name == "" || quantity <= 0 {
		return ReturnLine{}, ErrReturnItemIncomplete
	}
	line := ReturnLine{
		ID:       "return-" + uuid.NewString(),
		Name:     name,
		Quantity: quantity,
		Reason:   reason,
	}
	c.lines = append(c.lines, line)
	return line, nil
}

func (c *ReturnCart) RemoveByID(id string) {
	for pos, line := range c.lines {
		if line.ID == id {
			c.lines = append(c.lines[:pos], c.lines[pos+1:]...)
			return
		}
	}
}

func (c *ReturnCart) Lines() []ReturnLine {
	copied := make([]ReturnLine, len(c.lines))
	copy(copied, c.lines)
	return copied
}

func (c *ReturnCart) Len() int {
	return len(c.lines)
}

func (c *ReturnCart) Clear() {
	c.lines = nil
}
