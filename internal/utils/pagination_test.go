// internal/utils/pagination_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClampsParams(t *testing.T) {
	p := PaginationParams{Page: 0, Limit: 500, Order: "sideways"}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, defaultPageSize, p.Limit)
	assert.Equal(t, "desc", p.Order)

	p = PaginationParams{Page: 3, Limit: 50, Order: "asc"}
	p.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, "asc", p.Order)
}

func TestCreatePaginationResultTotals(t *testing.T) {
	result := CreatePaginationResult([]string{}, 41, PaginationParams{Page: 2, Limit: 20})
	assert.Equal(t, int64(41), result.Total)
	assert.Equal(t, 3, result.TotalPages)

	// Unnormalized params must not divide by zero.
	result = CreatePaginationResult(nil, 5, PaginationParams{})
	assert.Equal(t, 0, result.TotalPages)
}
