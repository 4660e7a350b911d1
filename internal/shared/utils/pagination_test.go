package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     Pagination
	}{
		{"defaults applied", 0, 0, Pagination{Page: 1, PageSize: 10}},
		{"negative values", -3, -1, Pagination{Page: 1, PageSize: 10}},
		{"valid values kept", 3, 25, Pagination{Page: 3, PageSize: 25}},
		{"page size capped", 1, 500, Pagination{Page: 1, PageSize: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePagination(tt.page, tt.pageSize))
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 40, Pagination{Page: 5, PageSize: 10}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 1, TotalPages(5, 0))
}
