package pkg

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// PaginationParams carries the page window requested by a client.
type PaginationParams struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// Normalize clamps the params into their allowed ranges.
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset returns the number of rows to skip for the current page.
func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NormalizePagination returns params clamped into range, tolerating nil.
func NormalizePagination(p *PaginationParams) *PaginationParams {
	if p == nil {
		p = &PaginationParams{}
	}
	p.Normalize()
	return p
}

// PaginatedResponse wraps a page of results with paging metadata.
type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginatedResponse assembles a PaginatedResponse from a page of data and
// the total row count.
func NewPaginatedResponse[T any](data []T, pagination *PaginationParams, total int64) *PaginatedResponse[T] {
	totalPages := 0
	if pagination.Limit > 0 {
		totalPages = int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	}
	if data == nil {
		data = []T{}
	}
	return &PaginatedResponse[T]{
		Data:       data,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
