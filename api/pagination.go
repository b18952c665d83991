package api

import (
	"fmt"
	"math"
)

// Default page size when the caller does not specify one.
const defaultPerPage = 20

// Pagination contains metadata for paginated listings. total is the
// global row count; total_pages is ceil(total / per_page), so an empty
// result set reports zero pages.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes pagination metadata, clamping page and
// per_page to sane minimums.
func NewPagination(page, perPage, total int) Pagination {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	return Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// Validate checks that the reported total_pages is consistent with
// total and per_page.
func (p Pagination) Validate() error {
	if p.PerPage < 1 {
		return fmt.Errorf("per_page must be at least 1, got %d", p.PerPage)
	}
	if p.Total < 0 {
		return fmt.Errorf("total must be non-negative, got %d", p.Total)
	}
	want := int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
	if p.TotalPages != want {
		return fmt.Errorf("total_pages %d inconsistent with total %d and per_page %d (want %d)",
			p.TotalPages, p.Total, p.PerPage, want)
	}
	return nil
}

// PaginatedResponse is a page of results plus its metadata.
type PaginatedResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPaginatedResponse wraps one page of items. A nil slice marshals as
// [] rather than null.
func NewPaginatedResponse[T any](items []T, page, perPage, total int) PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PaginatedResponse[T]{
		Data:       items,
		Pagination: NewPagination(page, perPage, total),
	}
}
