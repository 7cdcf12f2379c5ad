// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spareshub/spareshub-backend/internal/apperrors"
	"github.com/spareshub/spareshub-backend/internal/models"
)

// CartService manages the customer cart. Items can only be added while the
// product satisfies the storefront visibility invariant; items whose product
// later becomes hidden are surfaced as unavailable rather than silently
// dropped.
type CartService struct {
	db      *gorm.DB
	catalog *CatalogService
}

type CartLine struct {
	Item      models.CartItem `json:"item"`
	Available bool            `json:"available"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type CartSummary struct {
	Lines    []CartLine      `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func NewCartService(db *gorm.DB, catalog *CatalogService) *CartService {
	return &CartService{db: db, catalog: catalog}
}

func (s *CartService) AddItem(userID, productID uuid.UUID, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, apperrors.NewValidationError("quantity", "must be at least 1")
	}

	visible, err := s.catalog.IsVisible(productID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, apperrors.NewNotFound("product")
	}

	var item models.CartItem
	err = s.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity += quantity
		if err := s.db.Save(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
		if err := s.db.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to add cart item: %w", err)
		}
	default:
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &item, nil
}

func (s *CartService) UpdateQuantity(userID, productID uuid.UUID, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, apperrors.NewValidationError("quantity", "must be at least 1")
	}

	var item models.CartItem
	if err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("cart item")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	item.Quantity = quantity
	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return &item, nil
}

func (s *CartService) RemoveItem(userID, productID uuid.UUID) error {
	res := s.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("cart item")
	}
	return nil
}

func (s *CartService) ClearCart(userID uuid.UUID) error {
	if err := s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// GetCart loads the cart with each line's current availability. Subtotal only
// counts available lines.
func (s *CartService) GetCart(userID uuid.UUID) (*CartSummary, error) {
	var items []models.CartItem
	err := s.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	summary := &CartSummary{Subtotal: decimal.Zero}
	for _, item := range items {
		visible, err := s.catalog.IsVisible(item.ProductID)
		if err != nil {
			return nil, err
		}

		line := CartLine{Item: item, Available: visible, LineTotal: decimal.Zero}
		if visible {
			line.LineTotal = item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			summary.Subtotal = summary.Subtotal.Add(line.LineTotal)
		}
		summary.Lines = append(summary.Lines, line)
	}

	return summary, nil
}
