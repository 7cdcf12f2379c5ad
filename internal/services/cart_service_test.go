// internal/services/cart_service_test.go
package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spareshub/spareshub-backend/internal/apperrors"
	"github.com/spareshub/spareshub-backend/internal/models"
)

func TestAddItemRequiresVisibleProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, NewCatalogService(db))
	customer := createCustomer(t, db)

	vendor := createVendor(t, db, models.VendorStatusApproved)
	visible := createProduct(t, db, vendor.ID, models.ProductStatusApproved)
	hidden := createProduct(t, db, vendor.ID, models.ProductStatusDraft)

	item, err := svc.AddItem(customer.ID, visible.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	_, err = svc.AddItem(customer.ID, hidden.ID, 1)
	assert.True(t, apperrors.IsNotFound(err))

	suspendedVendor := createVendor(t, db, models.VendorStatusSuspended)
	fromSuspended := createProduct(t, db, suspendedVendor.ID, models.ProductStatusApproved)
	_, err = svc.AddItem(customer.ID, fromSuspended.ID, 1)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAddItemMergesQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, NewCatalogService(db))
	customer := createCustomer(t, db)
	vendor := createVendor(t, db, models.VendorStatusApproved)
	product := createProduct(t, db, vendor.ID, models.ProductStatusApproved)

	_, err := svc.AddItem(customer.ID, product.ID, 1)
	require.NoError(t, err)
	item, err := svc.AddItem(customer.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", customer.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

// A cart line whose product loses visibility is kept but flagged unavailable
// and excluded from the subtotal.
func TestCartMarksHiddenItemsUnavailable(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, NewCatalogService(db))
	admin := createAdmin(t, db)
	adminSvc := newAdminService(db)
	customer := createCustomer(t, db)

	vendor := createVendor(t, db, models.VendorStatusApproved)
	product := createProduct(t, db, vendor.ID, models.ProductStatusApproved)

	_, err := svc.AddItem(customer.ID, product.ID, 2)
	require.NoError(t, err)

	summary, err := svc.GetCart(customer.ID)
	require.NoError(t, err)
	require.Len(t, summary.Lines, 1)
	assert.True(t, summary.Lines[0].Available)
	assert.True(t, summary.Subtotal.Equal(product.Price.Mul(decimal.NewFromInt(2))))

	_, err = adminSvc.SuspendVendor(adminActor(admin), vendor.ID, "")
	require.NoError(t, err)

	summary, err = svc.GetCart(customer.ID)
	require.NoError(t, err)
	require.Len(t, summary.Lines, 1)
	assert.False(t, summary.Lines[0].Available)
	assert.True(t, summary.Subtotal.IsZero())
}

func TestUpdateAndRemoveItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, NewCatalogService(db))
	customer := createCustomer(t, db)
	vendor := createVendor(t, db, models.VendorStatusApproved)
	product := createProduct(t, db, vendor.ID, models.ProductStatusApproved)

	_, err := svc.AddItem(customer.ID, product.ID, 1)
	require.NoError(t, err)

	item, err := svc.UpdateQuantity(customer.ID, product.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	_, err = svc.UpdateQuantity(customer.ID, product.ID, 0)
	assert.True(t, apperrors.IsValidation(err))

	require.NoError(t, svc.RemoveItem(customer.ID, product.ID))
	err = svc.RemoveItem(customer.ID, product.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
