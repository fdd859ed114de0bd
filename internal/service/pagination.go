// internal/service/pagination.go
package service

// DefaultPageSize matches the dashboard's list views.
const DefaultPageSize = 10

const maxPageSize = 100

func clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// Paginate slices one page out of the already filtered and sorted set. A
// page past the end yields an empty slice, not an error.
func Paginate[T any](items []T, page, pageSize int) ([]T, map[string]int) {
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start >= total {
		start, end = total, total
	} else if end > total {
		end = total
	}

	pagination := map[string]int{
		"page":        page,
		"page_size":   pageSize,
		"total_count": total,
		"total_pages": totalPages,
	}
	return items[start:end], pagination
}
