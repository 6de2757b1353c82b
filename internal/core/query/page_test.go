package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%02d", i+1)
	}
	return items
}

// TestNewPage_Counts tests the page envelope totals
func TestNewPage_Counts(t *testing.T) {
	page := NewPage([]string{"a", "b", "c"}, 25, 1, 10)

	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.PageIndex)
	assert.False(t, page.HasPreviousPage)
	assert.True(t, page.HasNextPage)
}

// TestNewPage_Empty tests that an empty collection still reports one page
func TestNewPage_Empty(t *testing.T) {
	page := NewPage([]string{}, 0, 1, 10)

	assert.Equal(t, 0, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasPreviousPage)
	assert.False(t, page.HasNextPage)
}

// TestNewPage_NilItems tests that a nil slice becomes an empty one
func TestNewPage_NilItems(t *testing.T) {
	page := NewPage[string](nil, 0, 1, 10)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

// TestNewPage_ExactDivision tests totals when the count divides evenly
func TestNewPage_ExactDivision(t *testing.T) {
	page := NewPage(makeItems(10), 30, 3, 10)

	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasPreviousPage)
	assert.False(t, page.HasNextPage)
}

// TestPaginate_LastPartialPage tests the 25-items, 10-per-page, page-3 window
func TestPaginate_LastPartialPage(t *testing.T) {
	items := makeItems(25)

	page := Paginate(items, 3, 10)

	assert.Len(t, page.Items, 5)
	assert.Equal(t, "item-21", page.Items[0])
	assert.Equal(t, "item-25", page.Items[4])
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasPreviousPage)
	assert.False(t, page.HasNextPage)
}

// TestPaginate_AllPagesCoverCollection tests that the pages partition the collection
func TestPaginate_AllPagesCoverCollection(t *testing.T) {
	items := makeItems(25)

	var collected []string
	for p := 1; p <= 3; p++ {
		page := Paginate(items, p, 10)
		collected = append(collected, page.Items...)
	}

	assert.Equal(t, items, collected)
}

// TestPaginate_PastEnd tests that a page beyond the collection is empty but keeps totals
func TestPaginate_PastEnd(t *testing.T) {
	page := Paginate(makeItems(25), 7, 10)

	assert.Empty(t, page.Items)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 7, page.PageIndex)
	assert.True(t, page.HasPreviousPage)
	assert.False(t, page.HasNextPage)
}

// TestPaginate_DoesNotMutateInput tests that the source slice is left untouched
func TestPaginate_DoesNotMutateInput(t *testing.T) {
	items := makeItems(5)

	page := Paginate(items, 1, 3)
	page.Items[0] = "mutated"

	assert.Equal(t, "item-01", items[0])
}

// TestPaginate_InvalidPageFloored tests that page and pageSize below 1 are floored
func TestPaginate_InvalidPageFloored(t *testing.T) {
	page := Paginate(makeItems(5), 0, 0)

	assert.Equal(t, 1, page.PageIndex)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 5, page.TotalPages)
}
