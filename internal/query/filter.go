// Package query filters and paginates an in-memory venue collection.
package query

import (
	"sort"
	"strings"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
)

// DefaultPageSize is the number of venues shown per page.
const DefaultPageSize = 12

// Params describes a venue list query. An empty Search matches everything;
// Search and Country combine with logical AND when both are supplied.
type Params struct {
	Search       string
	Country      string
	Page         int
	PageSize     int
	SortByRating bool
}

// Result is one page of a filtered venue collection.
type Result struct {
	Venues     []domain.Venue `json:"venues"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalItems int            `json:"total_items"`
	TotalPages int            `json:"total_pages"`
}

// Apply filters venues by the query parameters and slices out the requested
// page. The page number is clamped to [1, totalPages]; out-of-range pages never
// error. Relative order of the input is preserved unless SortByRating is set.
func Apply(venues []domain.Venue, p Params) Result {
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}

	search := strings.ToLower(p.Search)
	country := strings.ToLower(p.Country)

	filtered := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		if search != "" &&
			!strings.Contains(strings.ToLower(v.Name), search) &&
			!strings.Contains(strings.ToLower(v.Description), search) {
			continue
		}
		if country != "" && !strings.Contains(strings.ToLower(v.Location.Country), country) {
			continue
		}
		filtered = append(filtered, v)
	}

	if p.SortByRating {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	}

	total := len(filtered)
	totalPages := (total + p.PageSize - 1) / p.PageSize

	page := p.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * p.PageSize
	if start > total {
		start = total
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}

	return Result{
		Venues:     filtered[start:end],
		Page:       page,
		PageSize:   p.PageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
