// Package query holds shared list-query primitives.
package query

import "inqboard/internal/shared/constants"

// PageFilter is the pagination slice of a list filter. Zero values fall back
// to the board defaults.
type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return constants.DefaultPageSize
	}
	if f.PageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return f.PageSize
}
