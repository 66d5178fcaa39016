package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sitesupply/worker-svc/internal/catalog"
)

var wireKey = catalog.Key{Category: "電線", Subcategory: "太平洋電線", Thickness: "2.0mm", Size: "100M"}

func testIndex() *catalog.Index {
	return catalog.NewIndex([]catalog.Item{
		{Category: "電線", Subcategory: "太平洋電線", Thickness: "2.0mm", Size: "100M", Unit: "捲"},
		{Category: "水管", Subcategory: "PVC管", Thickness: "B管", Size: "4分", Unit: "支"},
	})
}

func TestCart_SetQuantityInsertsOnce(t *testing.T) {
	idx := testIndex()
	c := New()

	assert.True(t, c.SetQuantity(idx, wireKey, 3))
	assert.Equal(t, 1, c.Len())

	line := c.Lines()[0]
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, "捲", line.Unit)
	assert.Equal(t, "太平洋電線", line.Subcategory)
	assert.False(t, line.Manual)
}

func TestCart_SetQuantityReplaces(t *testing.T) {
	idx := testIndex()
	c := New()

	c.SetQuantity(idx, wireKey, 3)
	c.SetQuantity(idx, wireKey, 7)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 7, c.Quantity(wireKey))
}

func TestCart_SetQuantityZeroRemoves(t *testing.T) {
	idx := testIndex()
	c := New()

	c.SetQuantity(idx, wireKey, 2)
	c.SetQuantity(idx, wireKey, 0)
	assert.Equal(t, 0, c.Len())

	// Removing an absent line is a no-op, not an error.
	assert.True(t, c.SetQuantity(idx, wireKey, -1))
	assert.Equal(t, 0, c.Len())
}

func TestCart_AdjustFromAbsentStartsAtZero(t *testing.T) {
	idx := testIndex()
	c := New()

	c.Adjust(idx, wireKey, 1)
	assert.Equal(t, 1, c.Quantity(wireKey))

	c.Adjust(idx, wireKey, 1)
	assert.Equal(t, 2, c.Quantity(wireKey))

	c.Adjust(idx, wireKey, -1)
	c.Adjust(idx, wireKey, -1)
	assert.Equal(t, 0, c.Len())
}

func TestCart_SetQuantityUnknownKey(t *testing.T) {
	idx := testIndex()
	c := New()

	unknown := catalog.Key{Category: "木材", Subcategory: "板材", Thickness: "t", Size: "s"}
	assert.False(t, c.SetQuantity(idx, unknown, 5))
	assert.Equal(t, 0, c.Len())
}

func TestCart_AddManualValidation(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		unit     string
		quantity int
		wantErr  bool
	}{
		{"ok", "特殊彎頭", "個", 2, false},
		{"missing_name", "", "個", 2, true},
		{"missing_unit", "特殊彎頭", "", 2, true},
		{"zero_quantity", "特殊彎頭", "個", 0, true},
		{"negative_quantity", "特殊彎頭", "個", -1, true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c := New()
			err := c.AddManual(testCase.itemName, testCase.unit, testCase.quantity)
			if testCase.wantErr {
				assert.ErrorIs(t, err, ErrManualItemIncomplete)
				assert.Equal(t, 0, c.Len())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, c.Len())
				assert.True(t, c.Lines()[0].Manual)
				assert.NotEmpty(t, c.Lines()[0].ID)
			}
		})
	}
}

func TestCart_ManualIDsAreUnique(t *testing.T) {
	c := New()
	assert.NoError(t, c.AddManual("彎頭", "個", 1))
	assert.NoError(t, c.AddManual("彎頭", "個", 1))

	lines := c.Lines()
	assert.Equal(t, 2, c.Len())
	assert.NotEqual(t, lines[0].ID, lines[1].ID)
}

func TestCart_ManualLinesIgnoredByKeyLookup(t *testing.T) {
	idx := testIndex()
	c := New()

	// A manual line that happens to share the subcategory name must not be
	// picked up by catalog-key reconciliation.
	assert.NoError(t, c.AddManual("太平洋電線", "捲", 1))
	c.SetQuantity(idx, wireKey, 4)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 4, c.Quantity(wireKey))
}

func TestCart_TotalQuantity(t *testing.T) {
	idx := testIndex()
	c := New()

	c.SetQuantity(idx, wireKey, 2)
	assert.NoError(t, c.AddManual("彎頭", "個", 3))
	assert.Equal(t, 5, c.TotalQuantity())
}

func TestReturnCart_AddAndRemove(t *testing.T) {
	c := NewReturnCart()

	line, err := c.Add("太平洋電線 (2.0mm/100M)", 2, "規格不符")
	assert.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "規格不符", line.Reason)

	c.RemoveByID(line.ID)
	assert.Equal(t, 0, c.Len())
}

func TestReturnCart_Validation(t *testing.T) {
	c := NewReturnCart()

	_, err := c.Add("", 2, "")
	assert.ErrorIs(t, err, ErrReturnItemIncomplete)

	_, err = c.Add("品項", 0, "")
	assert.ErrorIs(t, err, ErrReturnItemIncomplete)

	assert.Equal(t, 0, c.Len())
}
