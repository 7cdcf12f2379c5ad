// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spareshub/spareshub-backend/internal/apperrors"
	"github.com/spareshub/spareshub-backend/internal/models"
	"github.com/spareshub/spareshub-backend/internal/utils"
)

// CatalogService serves the customer storefront. A product is visible here iff
// the product is approved AND its vendor is approved; both conditions live in
// one JOIN so no path can observe half the invariant.
type CatalogService struct {
	db *gorm.DB
}

type CatalogFilter struct {
	utils.PaginationParams
	Category  string                  `json:"category,omitempty"`
	Brand     string                  `json:"brand,omitempty"`
	BrandType models.BrandType        `json:"brand_type,omitempty"`
	Condition models.ProductCondition `json:"condition,omitempty"`
	PriceMin  *decimal.Decimal        `json:"price_min,omitempty"`
	PriceMax  *decimal.Decimal        `json:"price_max,omitempty"`
	OEMRef    string                  `json:"oem_reference,omitempty"`

	// Vehicle fitment filter, usually taken from the customer's garage.
	Make      string `json:"make,omitempty"`
	Model     string `json:"model,omitempty"`
	Year      int    `json:"year,omitempty"`
	InStock   bool   `json:"in_stock,omitempty"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// visibleProducts is the single source of truth for storefront visibility.
// Every customer-facing read starts from this query.
func (s *CatalogService) visibleProducts() *gorm.DB {
	return s.db.Model(&models.Product{}).
		Joins("JOIN vendor_accounts ON vendor_accounts.id = products.vendor_id").
		Where("products.status = ? AND vendor_accounts.status = ?",
			models.ProductStatusApproved, models.VendorStatusApproved)
}

// Search lists visible products matching the filter. Attribute predicates,
// counting and pagination all push down to the database; only the fitment
// filter runs in memory, because fitments are a JSON document column.
func (s *CatalogService) Search(filter CatalogFilter) ([]models.Product, int64, error) {
	filter.Normalize()

	query := s.visibleProducts()

	if filter.Search != "" {
		searchTerm := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(products.name) LIKE ? OR LOWER(products.brand) LIKE ? OR LOWER(products.oem_reference) LIKE ?",
			searchTerm, searchTerm, searchTerm)
	}
	if filter.Category != "" {
		query = query.Where("products.category = ?", filter.Category)
	}
	if filter.Brand != "" {
		query = query.Where("products.brand = ?", filter.Brand)
	}
	if filter.BrandType != "" {
		query = query.Where("products.brand_type = ?", filter.BrandType)
	}
	if filter.Condition != "" {
		query = query.Where("products.condition = ?", filter.Condition)
	}
	if filter.PriceMin != nil {
		query = query.Where("products.price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("products.price <= ?", *filter.PriceMax)
	}
	if filter.OEMRef != "" {
		query = query.Where("products.oem_reference = ?", filter.OEMRef)
	}
	if filter.InStock {
		query = query.Where("products.quantity_in_stock > 0")
	}

	// Sort columns are qualified because the visibility JOIN makes bare
	// created_at ambiguous.
	sortColumns := map[string]string{
		"created_at": "products.created_at",
		"price":      "products.price",
		"name":       "products.name",
		"brand":      "products.brand",
	}
	sortColumn, ok := sortColumns[filter.Sort]
	if !ok {
		sortColumn = "products.created_at"
	}
	orderBy := sortColumn + " " + filter.Order

	// Without a fitment filter the whole query, count included, stays in SQL.
	if filter.Make == "" {
		var total int64
		if err := query.Count(&total).Error; err != nil {
			return nil, 0, fmt.Errorf("failed to count catalog: %w", err)
		}

		var products []models.Product
		err := utils.ApplyPagination(query.Order(orderBy), filter.PaginationParams).
			Find(&products).Error
		if err != nil {
			return nil, 0, fmt.Errorf("failed to search catalog: %w", err)
		}
		return products, total, nil
	}

	var candidates []models.Product
	if err := query.Order(orderBy).Find(&candidates).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search catalog: %w", err)
	}

	matched := candidates[:0]
	for _, p := range candidates {
		if productFits(&p, filter.Make, filter.Model, filter.Year) {
			matched = append(matched, p)
		}
	}

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

// GetProduct returns one visible product with its vendor's public profile.
// Products outside the visibility invariant read as not found, never as
// forbidden, so customers cannot probe hidden listings.
func (s *CatalogService) GetProduct(productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.visibleProducts().
		Preload("Vendor").
		Where("products.id = ?", productID).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("product")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// IsVisible reports whether a product currently satisfies the visibility
// invariant. Cart and order paths use it to reject hidden listings.
func (s *CatalogService) IsVisible(productID uuid.UUID) (bool, error) {
	var count int64
	err := s.visibleProducts().Where("products.id = ?", productID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("database error: %w", err)
	}
	return count > 0, nil
}

// ListCategories returns the distinct categories of visible products.
func (s *CatalogService) ListCategories() ([]string, error) {
	var categories []string
	err := s.visibleProducts().
		Distinct("products.category").
		Order("products.category").
		Pluck("products.category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListBrands returns the distinct brands of visible products.
func (s *CatalogService) ListBrands() ([]string, error) {
	var brands []string
	err := s.visibleProducts().
		Distinct("products.brand").
		Order("products.brand").
		Pluck("products.brand", &brands).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

// productFits checks the fitment list against a vehicle. An empty fitment list
// means universal fit.
func productFits(p *models.Product, vehicleMake, model string, year int) bool {
	if len(p.Fitments) == 0 {
		return true
	}
	for _, f := range p.Fitments {
		if !strings.EqualFold(f.Make, vehicleMake) {
			continue
		}
		if model != "" && f.Model != "" && !strings.EqualFold(f.Model, model) {
			continue
		}
		if year != 0 {
			if f.YearFrom != 0 && year < f.YearFrom {
				continue
			}
			if f.YearTo != 0 && year > f.YearTo {
				continue
			}
		}
		return true
	}
	return false
}
