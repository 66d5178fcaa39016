package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testItems() []Item {
	return []Item{
		{Category: "電線", Subcategory: "太平洋電線", Thickness: "2.0mm", Size: "100M", Unit: "捲"},
		{Category: "電線", Subcategory: "太平洋電線", Thickness: "2.0mm", Size: "50M", Unit: "捲"},
		{Category: "電線", Subcategory: "太平洋電線", Thickness: "1.6mm", Size: "100M", Unit: "捲"},
		{Category: "電線", Subcategory: "控制線", Thickness: "1.25mm", Size: "100M", Unit: "捲"},
		{Category: "水管", Subcategory: "PVC管", Thickness: "B管", Size: "4分", Unit: "支"},
		{Category: "水管", Subcategory: "PVC管", Thickness: "B管", Size: "6分", Unit: "支"},
		// Duplicate category/subcategory rows must not duplicate listings.
		{Category: "水管", Subcategory: "PVC管", Thickness: "W管", Size: "4分", Unit: "支"},
	}
}

func TestIndex_DistinctFirstSeenOrder(t *testing.T) {
	idx := NewIndex(testItems())

	assert.Equal(t, []string{"電線", "水管"}, idx.Categories())
	assert.Equal(t, []string{"太平洋電線", "控制線"}, idx.Subcategories("電線"))
	assert.Equal(t, []string{"2.0mm", "1.6mm"}, idx.Thicknesses("電線", "太平洋電線"))
	assert.Equal(t, []string{"B管", "W管"}, idx.Thicknesses("水管", "PVC管"))
	assert.Equal(t, []string{"100M", "50M"}, idx.Sizes("電線", "太平洋電線", "2.0mm"))
	assert.Equal(t, []string{"4分", "6分"}, idx.Sizes("水管", "PVC管", "B管"))
}

func TestIndex_NoDuplicatesAtAnyLevel(t *testing.T) {
	idx := NewIndex(testItems())

	for _, values := range [][]string{
		idx.Categories(),
		idx.Subcategories("水管"),
		idx.Thicknesses("水管", "PVC管"),
	} {
		seen := make(map[string]bool)
		for _, v := range values {
			assert.False(t, seen[v], "duplicate value %q", v)
			seen[v] = true
		}
	}
}

func TestIndex_FilterFullPath(t *testing.T) {
	idx := NewIndex(testItems())

	items := idx.Filter(Path{Category: "電線", Subcategory: "太平洋電線", Thickness: "2.0mm"})
	assert.Len(t, items, 2)
	assert.Equal(t, "100M", items[0].Size)
	assert.Equal(t, "50M", items[1].Size)
}

func TestIndex_FilterNoMatch(t *testing.T) {
	idx := NewIndex(testItems())

	assert.Empty(t, idx.Filter(Path{Category: "電線", Subcategory: "不存在"}))
}

func TestIndex_SearchCaseInsensitive(t *testing.T) {
	idx := NewIndex([]Item{
		{Category: "Cable", Subcategory: "THHN", Thickness: "2.0mm", Size: "100M", Unit: "roll"},
		{Category: "Pipe", Subcategory: "PVC", Thickness: "B", Size: "4分", Unit: "支"},
	})

	assert.Len(t, idx.Search("thhn"), 1)
	assert.Len(t, idx.Search("PVC"), 1)
	assert.Len(t, idx.Search("pvc"), 1)
}

func TestIndex_SearchMatchesSizeField(t *testing.T) {
	idx := NewIndex(testItems())

	// "6分" only ever appears in a size column.
	results := idx.Search("6分")
	assert.Len(t, results, 1)
	assert.Equal(t, "PVC管", results[0].Subcategory)
	assert.Equal(t, "6分", results[0].Size)
}

func TestIndex_SearchEmptyTermReturnsAll(t *testing.T) {
	idx := NewIndex(testItems())
	assert.Len(t, idx.Search("  "), len(testItems()))
}

func TestPath_Truncate(t *testing.T) {
	full := Path{Category: "電線", Subcategory: "太平洋電線", Thickness: "2.0mm"}

	assert.Equal(t, 3, full.Depth())
	assert.Equal(t, Path{Category: "電線", Subcategory: "太平洋電線"}, full.Truncate(2))
	assert.Equal(t, Path{Category: "電線"}, full.Truncate(1))
	assert.Equal(t, Path{}, full.Truncate(0))
	assert.Equal(t, 0, full.Truncate(0).Depth())
}

func TestIndex_Lookup(t *testing.T) {
	idx := NewIndex(testItems())

	item, ok := idx.Lookup(Key{Category: "水管", Subcategory: "PVC管", Thickness: "B管", Size: "6分"})
	assert.True(t, ok)
	assert.Equal(t, "支", item.Unit)

	_, ok = idx.Lookup(Key{Category: "水管", Subcategory: "PVC管", Thickness: "B管", Size: "8分"})
	assert.False(t, ok)
}
