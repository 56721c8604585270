package service

// DefaultPageSize is the fixed number of posts per listing page.
const DefaultPageSize = 10

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

// paginate clamps a requested 1-indexed page against the total item count
// and returns the page metadata plus the query offset. Out-of-range pages
// clamp to the nearest valid page instead of failing; an empty listing still
// has one (empty) page.
func paginate(page, pageSize int, total int64) (Pagination, int) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	p := Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	return p, (page - 1) * pageSize
}
