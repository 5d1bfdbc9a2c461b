package services

import "github.com/ComputingVictor/Mercadona-Agent/models"

// Page is one visible slice of a result set.
type Page struct {
	Items      []models.Product
	Number     int
	TotalPages int
}

// Paginate slices a result set. An empty result set reports page 0 of 0 with
// no items; otherwise the requested page is clamped to [1, totalPages], so
// repeating an out-of-range request always lands on the same page.
func Paginate(items []models.Product, pageSize, requestedPage int) Page {
	if len(items) == 0 {
		return Page{Items: []models.Product{}}
	}
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(items) + pageSize - 1) / pageSize

	page := requestedPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return Page{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
	}
}
