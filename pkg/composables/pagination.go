package composables

import "math"

type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// NewPagination normalizes a 1-based page and a page size.
// Non-positive sizes fall back to defaultSize, oversized ones are clamped to maxSize.
// Pages past the last addressable offset are clamped so the offset never overflows.
func NewPagination(page, size, defaultSize, maxSize int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	if last := math.MaxInt / size; page > last {
		page = last
	}
	return PaginationParams{
		Page:   page,
		Limit:  size,
		Offset: (page - 1) * size,
	}
}
