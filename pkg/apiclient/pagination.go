package apiclient

import (
	"net/url"
	"strconv"
)

// Pagination is the envelope platform list endpoints return alongside
// their data.
type Pagination struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// ListParams captures the query parameters common to platform list
// endpoints. Zero values are omitted from the query.
type ListParams struct {
	Page     int
	PageSize int
	Sort     string
	Search   string

	// Filters holds endpoint-specific parameters (status, type, ...).
	Filters url.Values
}

// Query renders the parameters as a URL query.
func (p ListParams) Query() url.Values {
	q := url.Values{}
	for key, values := range p.Filters {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}
