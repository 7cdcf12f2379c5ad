// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PaginationParams carries the list-endpoint query knobs shared by the
// storefront, the vendor portal and the admin panel. Domain-specific filters
// (category, brand, status) live on the per-service filter structs instead.
type PaginationParams struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Sort   string `json:"sort"`
	Order  string `json:"order"`
	Search string `json:"search"`
}

type PaginationResult struct {
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"total_pages"`
	Data       interface{} `json:"data"`
}

// GetPaginationParams reads page, limit, sort, order and search from the query
// string and clamps them to safe values.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))

	params := PaginationParams{
		Page:   page,
		Limit:  limit,
		Sort:   c.DefaultQuery("sort", "created_at"),
		Order:  c.DefaultQuery("order", "desc"),
		Search: c.Query("search"),
	}
	params.Normalize()
	return params
}

// Normalize clamps page and limit and forces order to asc or desc. Services
// call it on programmatically built params too.
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 || p.Limit > maxPageSize {
		p.Limit = defaultPageSize
	}
	if p.Order != "asc" && p.Order != "desc" {
		p.Order = "desc"
	}
}

func ApplyPagination(db *gorm.DB, params PaginationParams) *gorm.DB {
	return db.Offset((params.Page - 1) * params.Limit).Limit(params.Limit)
}

// ApplySort orders by params.Sort when it is in the allowed list, falling back
// to created_at.
func ApplySort(db *gorm.DB, params PaginationParams, allowed []string) *gorm.DB {
	sortField := "created_at"
	for _, field := range allowed {
		if field == params.Sort {
			sortField = params.Sort
			break
		}
	}

	order := params.Order
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	return db.Order(sortField + " " + order)
}

func CreatePaginationResult(data interface{}, total int64, params PaginationParams) PaginationResult {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.Limit)))
	}

	return PaginationResult{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
		Data:       data,
	}
}

// SetPaginationHeaders mirrors the body envelope in response headers so list
// clients can read totals without parsing the body.
func SetPaginationHeaders(c *gin.Context, result PaginationResult) {
	c.Header("X-Total-Count", strconv.FormatInt(result.Total, 10))
	c.Header("X-Page", strconv.Itoa(result.Page))
	c.Header("X-Per-Page", strconv.Itoa(result.Limit))
	c.Header("X-Total-Pages", strconv.Itoa(result.TotalPages))
}
