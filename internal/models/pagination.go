package models

// Listing endpoints page their results; these bound what a client may ask for
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationResult describes one page of a listing
type PaginationResult struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginationResult computes the page metadata for a listing response
func NewPaginationResult(page, pageSize int, totalCount int64) PaginationResult {
	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))

	return PaginationResult{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// ValidateAndSetDefaults clamps page and page size to usable values
func ValidateAndSetDefaults(page, pageSize *int) {
	if *page < 1 {
		*page = 1
	}
	if *pageSize < 1 {
		*pageSize = DefaultPageSize
	}
	if *pageSize > MaxPageSize {
		*pageSize = MaxPageSize
	}
}

// CalculateOffset converts page and page size to a SQL offset
func CalculateOffset(page, pageSize int) int {
	return (page - 1) * pageSize
}
