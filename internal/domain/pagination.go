package domain

// PaginationParams carries 1-based page selection for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset converts the page selection into a row offset. Pages below 1
// start at the beginning.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}
