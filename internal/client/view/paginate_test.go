package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func nItems(n int) []item {
	out := make([]item, n)
	for i := range out {
		out[i] = item{id: fmt.Sprintf("%d", i)}
	}
	return out
}

func TestPaginate_TwelveItemsSizeFive(t *testing.T) {
	items := nItems(12)

	page0 := Paginate(items, PageWindow{Page: 0, Size: 5})
	require.Equal(t, []string{"0", "1", "2", "3", "4"}, ids(page0))

	page2 := Paginate(items, PageWindow{Page: 2, Size: 5})
	require.Equal(t, []string{"10", "11"}, ids(page2))

	page3 := Paginate(items, PageWindow{Page: 3, Size: 5})
	require.Empty(t, page3)
}

func TestPaginate_LengthFormula(t *testing.T) {
	// len(paginate(C, W)) == min(W.size, max(0, len(C) - W.page*W.size))
	for _, n := range []int{0, 1, 4, 5, 6, 12, 25, 26} {
		for _, size := range []int{5, 10, 25} {
			for page := 0; page < 5; page++ {
				want := n - page*size
				if want < 0 {
					want = 0
				}
				if want > size {
					want = size
				}
				got := Paginate(nItems(n), PageWindow{Page: page, Size: size})
				require.Len(t, got, want, "n=%d size=%d page=%d", n, size, page)
			}
		}
	}
}

func TestPaginate_DegenerateWindows(t *testing.T) {
	items := nItems(3)
	require.Empty(t, Paginate(items, PageWindow{Page: -1, Size: 5}))
	require.Empty(t, Paginate(items, PageWindow{Page: 0, Size: 0}))
	require.Empty(t, Paginate[item](nil, PageWindow{Page: 0, Size: 5}))
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 0, TotalPages(0, 5))
	require.Equal(t, 1, TotalPages(1, 5))
	require.Equal(t, 1, TotalPages(5, 5))
	require.Equal(t, 2, TotalPages(6, 5))
	require.Equal(t, 3, TotalPages(12, 5))
	require.Equal(t, 0, TotalPages(10, 0))
}
