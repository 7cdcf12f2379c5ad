// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spareshub/spareshub-backend/internal/apperrors"
	"github.com/spareshub/spareshub-backend/internal/models"
	"github.com/spareshub/spareshub-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type ProductRequest struct {
	Name            string                  `json:"name"`
	SKU             string                  `json:"sku"`
	OEMReference    string                  `json:"oem_reference"`
	Category        string                  `json:"category"`
	Brand           string                  `json:"brand"`
	BrandType       models.BrandType        `json:"brand_type"`
	Condition       models.ProductCondition `json:"condition"`
	MRP             decimal.Decimal         `json:"mrp"`
	Price           decimal.Decimal         `json:"price"`
	QuantityInStock int                     `json:"quantity_in_stock"`
	Images          []string                `json:"images"`
	Fitments        models.FitmentList      `json:"fitments"`
	Description     string                  `json:"description"`

	// Submit sends the listing straight to review instead of saving a draft.
	Submit bool `json:"submit"`
}

// Validate checks the listing preconditions: name, category and a positive
// price are required, everything else is optional but validated when present.
func (r *ProductRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.NewValidationError("name", "required")
	}
	if strings.TrimSpace(r.Category) == "" {
		return apperrors.NewValidationError("category", "required")
	}
	if r.BrandType != "" && r.BrandType != models.BrandTypeOEM && r.BrandType != models.BrandTypeAftermarket {
		return apperrors.NewValidationError("brand_type", "must be OEM or Aftermarket")
	}
	switch r.Condition {
	case "", models.ConditionNew, models.ConditionUsed, models.ConditionRefurbished:
	default:
		return apperrors.NewValidationError("condition", "must be New, Used or Refurbished")
	}
	if !r.Price.IsPositive() {
		return apperrors.NewValidationError("price", "must be positive")
	}
	if r.MRP.IsNegative() {
		return apperrors.NewValidationError("mrp", "must not be negative")
	}
	if !r.MRP.IsZero() && r.Price.GreaterThan(r.MRP) {
		return apperrors.NewValidationError("price", "must not exceed MRP")
	}
	if r.QuantityInStock < 0 {
		return apperrors.NewValidationError("quantity_in_stock", "must not be negative")
	}
	return nil
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// CreateDraft creates a new listing in draft. Drafts are private to the vendor
// and never customer-visible regardless of the vendor's own status.
func (s *ProductService) CreateDraft(vendorID uuid.UUID, req *ProductRequest) (*models.Product, error) {
	return s.create(vendorID, req, models.ProductStatusDraft)
}

// CreateSubmitted creates a listing directly in pending_review, for vendors
// that fill everything in and submit in one call.
func (s *ProductService) CreateSubmitted(vendorID uuid.UUID, req *ProductRequest) (*models.Product, error) {
	return s.create(vendorID, req, models.ProductStatusPendingReview)
}

func (s *ProductService) create(vendorID uuid.UUID, req *ProductRequest, status models.ProductStatus) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product := &models.Product{
		VendorID:        vendorID,
		Name:            req.Name,
		SKU:             req.SKU,
		OEMReference:    req.OEMReference,
		Category:        req.Category,
		Brand:           req.Brand,
		BrandType:       req.BrandType,
		Condition:       req.Condition,
		MRP:             req.MRP,
		Price:           req.Price,
		QuantityInStock: req.QuantityInStock,
		Images:          pq.StringArray(req.Images),
		Fitments:        req.Fitments,
		Description:     req.Description,
		Status:          status,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// GetOwnProduct loads a product and enforces vendor ownership.
func (s *ProductService) GetOwnProduct(vendorID, productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("product")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if product.VendorID != vendorID {
		return nil, apperrors.ErrForbidden
	}
	return &product, nil
}

// Update edits listing content. Edits are allowed only while the listing is in
// an editable status (draft or rejected); everything else must be unpublished
// or go through review first.
func (s *ProductService) Update(vendorID, productID uuid.UUID, req *ProductRequest) (*models.Product, error) {
	product, err := s.GetOwnProduct(vendorID, productID)
	if err != nil {
		return nil, err
	}

	if !product.Status.Editable() {
		return nil, apperrors.NewInvalidTransition("product", string(product.Status), "edit")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.SKU = req.SKU
	product.OEMReference = req.OEMReference
	product.Category = req.Category
	product.Brand = req.Brand
	product.BrandType = req.BrandType
	product.Condition = req.Condition
	product.MRP = req.MRP
	product.Price = req.Price
	product.QuantityInStock = req.QuantityInStock
	product.Images = pq.StringArray(req.Images)
	product.Fitments = req.Fitments
	product.Description = req.Description

	if err := s.db.Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// SubmitForReview moves a draft, rejected or unpublished listing into
// pending_review and clears any previous rejection reason.
func (s *ProductService) SubmitForReview(vendorID, productID uuid.UUID) (*models.Product, error) {
	if _, err := s.GetOwnProduct(vendorID, productID); err != nil {
		return nil, err
	}
	return transitionProduct(s.db, productID, models.ProductStatusPendingReview, map[string]interface{}{
		"rejection_reason": nil,
	})
}

// Unpublish withdraws an approved listing from the storefront without losing
// its content. Resubmission goes back through review.
func (s *ProductService) Unpublish(vendorID, productID uuid.UUID) (*models.Product, error) {
	if _, err := s.GetOwnProduct(vendorID, productID); err != nil {
		return nil, err
	}
	return transitionProduct(s.db, productID, models.ProductStatusUnpublished, nil)
}

// Archive retires an approved listing permanently.
func (s *ProductService) Archive(vendorID, productID uuid.UUID) (*models.Product, error) {
	if _, err := s.GetOwnProduct(vendorID, productID); err != nil {
		return nil, err
	}
	return transitionProduct(s.db, productID, models.ProductStatusArchived, nil)
}

// DeleteDraft hard-deletes a listing that never went through review.
func (s *ProductService) DeleteDraft(vendorID, productID uuid.UUID) error {
	product, err := s.GetOwnProduct(vendorID, productID)
	if err != nil {
		return err
	}
	if product.Status != models.ProductStatusDraft {
		return apperrors.NewInvalidTransition("product", string(product.Status), "delete")
	}
	if err := s.db.Delete(product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// ListOwn returns the vendor's listings in every status, optionally filtered.
func (s *ProductService) ListOwn(vendorID uuid.UUID, status models.ProductStatus, params utils.PaginationParams) (*utils.PaginationResult, error) {
	query := s.db.Model(&models.Product{}).Where("vendor_id = ?", vendorID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	query = utils.ApplyPagination(query.Order("created_at DESC"), params)
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	result := utils.CreatePaginationResult(products, total, params)
	return &result, nil
}

// transitionProduct applies a status transition with a compare-and-set update.
// The WHERE clause names every legal source status, so of two racing writers
// exactly one sees RowsAffected == 1; the loser gets a typed error derived
// from the row's actual state.
func transitionProduct(db *gorm.DB, productID uuid.UUID, target models.ProductStatus, extra map[string]interface{}) (*models.Product, error) {
	sources := models.ProductTransitionSources(target)

	updates := map[string]interface{}{"status": target}
	for k, v := range extra {
		updates[k] = v
	}

	res := db.Model(&models.Product{}).
		Where("id = ? AND status IN ?", productID, sources).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update product status: %w", res.Error)
	}

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("product")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if res.RowsAffected == 0 {
		if product.Status.CanTransitionTo(target) {
			// The row moved into a legal source between our UPDATE and re-read.
			return nil, apperrors.NewConflict("product")
		}
		return nil, apperrors.NewInvalidTransition("product", string(product.Status), string(target))
	}

	return &product, nil
}
