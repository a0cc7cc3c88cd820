package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func TestPaginateMiddleAndLastPage(t *testing.T) {
	items := intRange(1, 23)

	page, meta := Paginate(items, 3, 5)
	assert.Equal(t, []int{11, 12, 13, 14, 15}, page)
	assert.Equal(t, Meta{Page: 3, PageSize: 5, Total: 23, TotalPages: 5, From: 11, To: 15}, meta)

	page, meta = Paginate(items, 5, 5)
	assert.Equal(t, []int{21, 22, 23}, page)
	assert.Equal(t, 21, meta.From)
	assert.Equal(t, 23, meta.To)
}

func TestPaginateConcatenationReproducesInput(t *testing.T) {
	items := intRange(1, 23)
	_, meta := Paginate(items, 1, 5)

	var all []int
	for p := 1; p <= meta.TotalPages; p++ {
		page, m := Paginate(items, p, 5)
		assert.LessOrEqual(t, len(page), 5)
		assert.Equal(t, p, m.Page)
		all = append(all, page...)
	}
	assert.Equal(t, items, all)
}

func TestPaginateClampsOutOfRangePage(t *testing.T) {
	items := intRange(1, 12)

	// a stale page number must not return an empty slice
	page, meta := Paginate(items, 99, 5)
	require.NotEmpty(t, page)
	assert.Equal(t, 3, meta.Page)
	assert.Equal(t, []int{11, 12}, page)

	page, meta = Paginate(items, 0, 5)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, page)
}

func TestPaginateEmptyDataset(t *testing.T) {
	page, meta := Paginate([]int{}, 1, 5)
	assert.Empty(t, page)
	assert.Equal(t, Meta{Page: 1, PageSize: 5, Total: 0, TotalPages: 0, From: 0, To: 0}, meta)
}

func TestFilterAppliesEveryPredicate(t *testing.T) {
	items := intRange(1, 10)
	even := func(i int) bool { return i%2 == 0 }
	big := func(i int) bool { return i > 4 }

	assert.Equal(t, []int{6, 8, 10}, Filter(items, even, big))
	// nil predicates are optional filters that are switched off
	assert.Equal(t, []int{2, 4, 6, 8, 10}, Filter(items, even, nil))
	assert.Equal(t, items, Filter(items))
}

func TestSortByIsATotalOrder(t *testing.T) {
	type product struct {
		Name  string
		Price int64
	}
	items := []product{
		{"Bún bò", 45000},
		{"Phở gà", 40000},
		{"Cơm tấm", 35000},
		{"Bánh mì", 20000},
	}
	byPrice := func(a, b product) bool { return a.Price < b.Price }

	asc := SortBy(items, byPrice)
	desc := SortBy(asc, Desc(byPrice))

	// sorting ascending then descending reverses the order exactly
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
	assert.Equal(t, int64(20000), asc[0].Price)
	assert.Equal(t, int64(45000), desc[0].Price)

	// input untouched
	assert.Equal(t, int64(45000), items[0].Price)
}

func TestLessStringIsCaseInsensitive(t *testing.T) {
	assert.True(t, LessString("apple", "Banana"))
	assert.True(t, LessString("Apple", "banana"))
	assert.False(t, LessString("banana", "APPLE"))
}

func TestMatchSubstring(t *testing.T) {
	assert.True(t, MatchSubstring("Bánh mì thịt", "mì"))
	assert.True(t, MatchSubstring("Bánh mì thịt", ""))
	assert.False(t, MatchSubstring("Bánh mì thịt", "phở"))
	assert.True(t, MatchSubstring("TRÀ SỮA", "sữa"))
}
