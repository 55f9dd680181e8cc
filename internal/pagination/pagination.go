// Package pagination slices ordered sequences into fixed-size pages.
//
// Paging is deliberately lenient: a missing or out-of-range page number is
// clamped into the valid range and the nearest valid page is returned, never
// an error.
package pagination

// DefaultPageSize is the page size used across list endpoints.
const DefaultPageSize = 10

// Page is one window of an ordered sequence plus its position metadata.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Number     int  `json:"number"`
	PageSize   int  `json:"page_size"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Paginate returns at most pageSize items starting at offset
// (pageNumber-1)*pageSize. pageNumber values below 1 (including the zero
// value used for "not supplied") resolve to the first page; values past the
// end resolve to the last valid page.
func Paginate[T any](items []T, pageSize, pageNumber int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     pageNumber,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    pageNumber < totalPages,
		HasPrev:    pageNumber > 1,
	}
}
