package datasource

import "github.com/goliatone/go-pages/pkg/interfaces"

// BuildPagination derives page metadata from the current page, the page size,
// and the pre-slice record count. The returned shape is a stable contract for
// view layers; callers must pass limit > 0.
func BuildPagination(page, limit, totalCount int) *interfaces.Pagination {
	if page < 1 {
		page = 1
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (totalCount + limit - 1) / limit
	}

	meta := &interfaces.Pagination{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}

	if meta.HasPrev {
		meta.PrevPage = page - 1
	}
	if meta.HasNext {
		meta.NextPage = page + 1
	}

	return meta
}
