package model

// Page is the paginated envelope returned by every list endpoint. Pages are
// zero-indexed.
type Page[T any] struct {
	Items      []T   `json:"items"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
	IsLast     bool  `json:"isLast"`
}

// NewPage wraps one page of items with its paging metadata.
func NewPage[T any](items []T, page, size int, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Items:      items,
		PageNumber: page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: totalPages,
		IsLast:     page >= totalPages-1,
	}
}
