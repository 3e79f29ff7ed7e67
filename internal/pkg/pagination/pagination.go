// Package pagination holds the offset/limit arithmetic shared by every
// paginated repository listing.
package pagination

// PageInfo describes where a page sits inside a full result set.
type PageInfo struct {
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// Compute derives page metadata from a total row count and the
// caller-supplied page/limit. Out-of-range pages are not clamped: they
// yield an empty item list upstream but still valid metadata.
func Compute(totalCount, page, limit int) PageInfo {
	totalPages := 0
	if limit > 0 {
		totalPages = (totalCount + limit - 1) / limit
	}
	return PageInfo{
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

// Offset converts a 1-based page number into a row offset.
func Offset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}
