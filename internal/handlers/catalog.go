// internal/handlers/catalog.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/spareshub/spareshub-backend/internal/models"
	"github.com/spareshub/spareshub-backend/internal/services"
	"github.com/spareshub/spareshub-backend/internal/utils"
)

// CatalogHandler is the public storefront. No authentication required.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GET /catalog/products
func (h *CatalogHandler) Search(c *gin.Context) {
	filter := services.CatalogFilter{
		PaginationParams: utils.GetPaginationParams(c),
		Category:         c.Query("category"),
		Brand:            c.Query("brand"),
		BrandType:        models.BrandType(c.Query("brand_type")),
		Condition:        models.ProductCondition(c.Query("condition")),
		OEMRef:           c.Query("oem_reference"),
		Make:             c.Query("make"),
		Model:            c.Query("model"),
	}

	if v := c.Query("price_min"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.PriceMin = &d
		}
	}
	if v := c.Query("price_max"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.PriceMax = &d
		}
	}
	if v := c.Query("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			filter.Year = year
		}
	}
	filter.InStock = c.Query("in_stock") == "true"

	products, total, err := h.catalogService.Search(filter)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(products, total, filter.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /catalog/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(productID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// GET /catalog/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
	})
}

// GET /catalog/brands
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.catalogService.ListBrands()
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"brands": brands,
	})
}
