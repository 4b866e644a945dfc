package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

func TestSlice(t *testing.T) {
	items := seq(12)

	tests := []struct {
		name string
		page int
		size int
		want []int
	}{
		{name: "first page", page: 1, size: 5, want: []int{1, 2, 3, 4, 5}},
		{name: "middle page", page: 2, size: 5, want: []int{6, 7, 8, 9, 10}},
		{name: "short last page", page: 3, size: 5, want: []int{11, 12}},
		{name: "past the end", page: 4, size: 5, want: []int{}},
		{name: "page zero", page: 0, size: 5, want: []int{}},
		{name: "zero size", page: 1, size: 0, want: []int{}},
		{name: "exact fit", page: 2, size: 6, want: []int{7, 8, 9, 10, 11, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slice(items, tt.page, tt.size))
		})
	}
}

func TestSlice_CoversEveryItemOnce(t *testing.T) {
	for _, n := range []int{0, 1, 7, 12, 40} {
		for _, size := range []int{5, 6, 8} {
			items := seq(n)
			var joined []int
			for p := 1; p <= PageCount(n, size); p++ {
				page := Slice(items, p, size)
				assert.LessOrEqual(t, len(page), size)
				joined = append(joined, page...)
			}
			if n == 0 {
				assert.Empty(t, joined)

				continue
			}
			assert.Equal(t, items, joined, "n=%d size=%d", n, size)
		}
	}
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 5))
	assert.Equal(t, 1, PageCount(1, 5))
	assert.Equal(t, 1, PageCount(5, 5))
	assert.Equal(t, 2, PageCount(7, 5))
	assert.Equal(t, 3, PageCount(12, 5))
	assert.Equal(t, 0, PageCount(3, 0))
}
