package models

// Pagination holds pagination state and helpers
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int
	PerPage     int
	HasPrev     bool
	HasNext     bool
}

// NewPagination creates pagination from total items and current page
func NewPagination(totalItems, currentPage, perPage int) Pagination {
	if perPage <= 0 {
		perPage = 9
	}
	if currentPage <= 0 {
		currentPage = 1
	}

	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	return Pagination{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PerPage:     perPage,
		HasPrev:     currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}

// Offset returns the starting index for slicing
func (p Pagination) Offset() int {
	return (p.CurrentPage - 1) * p.PerPage
}

// PaginateProjects returns the slice of projects for the requested page.
// Out of range pages are clamped to the last page.
func PaginateProjects(projects []Project, page, perPage int) ([]Project, Pagination) {
	pagination := NewPagination(len(projects), page, perPage)

	start := pagination.Offset()
	end := start + pagination.PerPage

	if start >= len(projects) {
		return []Project{}, pagination
	}
	if end > len(projects) {
		end = len(projects)
	}

	return projects[start:end], pagination
}
