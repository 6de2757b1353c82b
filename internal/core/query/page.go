package query

// Page is the envelope returned by every listing: one slice of the filtered,
// sorted collection plus the aggregate counts.
type Page[T any] struct {
	Items           []T  `json:"items"`
	PageIndex       int  `json:"page_index"`
	TotalPages      int  `json:"total_pages"`
	TotalCount      int  `json:"total_count"`
	HasPreviousPage bool `json:"has_previous_page"`
	HasNextPage     bool `json:"has_next_page"`
}

// NewPage builds the envelope for items that were already windowed (for
// example by LIMIT/OFFSET), given the pre-pagination total. Page and pageSize
// are floored to 1, and TotalPages is at least 1 even for an empty
// collection. A page past the end is not an error: it carries no items but
// correct totals.
func NewPage[T any](items []T, totalCount, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:           items,
		PageIndex:       page,
		TotalPages:      totalPages,
		TotalCount:      totalCount,
		HasPreviousPage: page > 1,
		HasNextPage:     page < totalPages,
	}
}

// Paginate slices an in-memory, already filtered and sorted sequence into one
// page. The input is never mutated.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	start := (page - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	window := make([]T, end-start)
	copy(window, items[start:end])
	return NewPage(window, len(items), page, pageSize)
}
