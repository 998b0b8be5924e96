package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPaginate(t *testing.T) {
	t.Parallel()

	numbers := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name     string
		pageSize int
		items    []int
		selected int
		page     []int
		index    int
	}{
		{name: "first page", pageSize: 3, items: numbers, selected: 0, page: []int{0, 1, 2}, index: 0},
		{name: "middle of page", pageSize: 3, items: numbers, selected: 7, page: []int{6, 7, 8}, index: 1},
		{name: "page boundary", pageSize: 3, items: numbers, selected: 3, page: []int{3, 4, 5}, index: 0},
		{name: "short last page", pageSize: 3, items: numbers, selected: 9, page: []int{9}, index: 0},
		{name: "fits in one page", pageSize: 5, items: []int{10, 11, 12}, selected: 1, page: []int{10, 11, 12}, index: 1},
		{name: "exactly one page", pageSize: 10, items: numbers, selected: 9, page: numbers, index: 9},
		{name: "zero page size", pageSize: 0, items: numbers, selected: 4, page: numbers, index: 4},
		{name: "selection past end is clamped", pageSize: 4, items: numbers, selected: 42, page: []int{8, 9}, index: 1},
		{name: "negative selection is clamped", pageSize: 4, items: numbers, selected: -3, page: []int{0, 1, 2, 3}, index: 0},
		{name: "empty", pageSize: 3, items: nil, selected: 0, page: nil, index: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, index := Paginate(tt.pageSize, tt.items, tt.selected)
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.index, index)
		})
	}
}

func TestPaginateProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 100).Draw(t, "n")
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		pageSize := rapid.IntRange(1, 20).Draw(t, "pageSize")
		selected := rapid.IntRange(0, n-1).Draw(t, "selected")

		page, index := Paginate(pageSize, items, selected)

		if len(page) == 0 || len(page) > max(pageSize, n) {
			t.Fatalf("page of %d items for page size %d and %d items", len(page), pageSize, n)
		}
		if index < 0 || index >= len(page) {
			t.Fatalf("index %d outside page of %d", index, len(page))
		}
		if page[index] != selected {
			t.Fatalf("page[%d] = %d, want selected %d", index, page[index], selected)
		}
		if n > pageSize && page[0]%pageSize != 0 {
			t.Fatalf("page starts at %d, not a multiple of %d", page[0], pageSize)
		}
	})
}
