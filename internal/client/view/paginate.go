package view

// DefaultPageSize matches the dashboard's initial rows-per-page choice.
const DefaultPageSize = 5

// PageSizes are the selectable rows-per-page options.
var PageSizes = []int{5, 10, 25}

// PageWindow selects the visible slice of the filtered collection.
type PageWindow struct {
	Page int // zero-based page index
	Size int // rows per page, positive
}

// Paginate returns the contiguous slice [page*size, page*size+size) clamped
// to the collection bounds. An out-of-range page yields an empty slice,
// never an error.
func Paginate[E any](items []E, w PageWindow) []E {
	if w.Size <= 0 || w.Page < 0 {
		return nil
	}
	start := w.Page * w.Size
	if start >= len(items) {
		return nil
	}
	end := start + w.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is the page count shown next to the pager.
func TotalPages(count, size int) int {
	if size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}
