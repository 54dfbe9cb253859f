package trivia

import (
	"math"
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

func TestPaginate(t *testing.T) {
	items := seq(23)

	cases := []struct {
		name string
		page int
		want []int
	}{
		{name: "first page", page: 1, want: seq(10)},
		{name: "middle page", page: 2, want: []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
		{name: "partial last page", page: 3, want: []int{21, 22, 23}},
		{name: "past the end", page: 4, want: []int{}},
		{name: "far past the end", page: math.MaxInt, want: []int{}},
		{name: "zero page", page: 0, want: []int{}},
		{name: "negative page", page: -1, want: []int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Paginate(items, tc.page, 10))
		})
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	got := Paginate([]int(nil), 1, 10)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPaginateExactMultiple(t *testing.T) {
	items := seq(20)
	assert.Len(t, Paginate(items, 2, 10), 10)
	assert.Empty(t, Paginate(items, 3, 10))
}
