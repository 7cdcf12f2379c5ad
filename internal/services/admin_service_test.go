// internal/services/admin_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spareshub/spareshub-backend/internal/apperrors"
	"github.com/spareshub/spareshub-backend/internal/models"
	"github.com/spareshub/spareshub-backend/internal/utils"
)

func TestApproveVendorFromPending(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	admin := createAdmin(t, db)
	vendor := createVendor(t, db, models.VendorStatusPending)

	approved, err := svc.ApproveVendor(adminActor(admin), vendor.ID, "documents verified")
	require.NoError(t, err)
	assert.Equal(t, models.VendorStatusApproved, approved.Status)
}

func TestRejectVendorIsTerminal(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	admin := createAdmin(t, db)
	vendor := createVendor(t, db, models.VendorStatusPending)

	rejected, err := svc.RejectVendor(adminActor(admin), vendor.ID, "tax id does not match")
	require.NoError(t, err)
	assert.Equal(t, models.VendorStatusRejected, rejected.Status)

	// No moderation action leads out of rejected.
	_, err = svc.ApproveVendor(adminActor(admin), vendor.ID, "")
	assert.True(t, apperrors.IsInvalidTransition(err))
	_, err = svc.SuspendVendor(adminActor(admin), vendor.ID, "")
	assert.True(t, apperrors.IsInvalidTransition(err))
	_, err = svc.UnsuspendVendor(adminActor(admin), vendor.ID, "")
	assert.True(t, apperrors.IsInvalidTransition(err))

	var stored models.VendorAccount
	require.NoError(t, db.First(&stored, vendor.ID).Error)
	assert.Equal(t, models.VendorStatusRejected, stored.Status)
}

func TestSuspendAndUnsuspendVendor(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	admin := createAdmin(t, db)
	vendor := createVendor(t, db, models.VendorStatusApproved)

	suspended, err := svc.SuspendVendor(adminActor(admin), vendor.ID, "counterfeit complaint")
	require.NoError(t, err)
	assert.Equal(t, models.VendorStatusSuspended, suspended.Status)

	// Suspending a pending vendor is not legal.
	pending := createVendor(t, db, models.VendorStatusPending)
	_, err = svc.SuspendVendor(adminActor(admin), pending.ID, "")
	assert.True(t, apperrors.IsInvalidTransition(err))

	restored, err := svc.UnsuspendVendor(adminActor(admin), vendor.ID, "complaint resolved")
	require.NoError(t, err)
	assert.Equal(t, models.VendorStatusApproved, restored.Status)
}

func TestVendorModerationWritesAccountLog(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	admin := createAdmin(t, db)
	vendor := createVendor(t, db, models.VendorStatusPending)

	_, err := svc.ApproveVendor(adminActor(admin), vendor.ID, "kyc complete")
	require.NoError(t, err)

	var logs []models.AccountLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "vendor.approve", logs[0].Action)
	assert.Equal(t, "vendor", logs[0].EntityType)
	assert.Equal(t, vendor.ID, *logs[0].EntityID)
	assert.Equal(t, admin.ID, *logs[0].ActorID)
	assert.Equal(t, models.RoleAdmin, logs[0].ActorRole)
	assert.Equal(t, "kyc complete", logs[0].Remarks)
}

func TestFailedTransitionWritesNoAccountLog(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	admin := createAdmin(t, db)
	vendor := createVendor(t, db, models.VendorStatusApproved)

	_, err := svc.ApproveVendor(adminActor(admin), vendor.ID, "")
	require.Error(t, err)

	var count int64
	db.Model(&models.AccountLog{}).Count(&count)
	assert.Zero(t, count)
}

func TestApproveProductFromPendingReview(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	admin := createAdmin(t, db)
	vendor := createVendor(t, db, models.VendorStatusApproved)
	product := createProduct(t, db, vendor.ID, models.ProductStatusPendingReview)

	approved, err := svc.ApproveProduct(adminActor(admin), product.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.ProductStatusApproved, approved.Status)
}

func TestRejectProductRequiresReason(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	admin := createAdmin(t, db)
	vendor := createVendor(t, db, models.VendorStatusApproved)
	product := createProduct(t, db, vendor.ID, models.ProductStatusPendingReview)

	_, err := svc.RejectProduct(adminActor(admin), product.ID, "  ")
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "reason", verr.Field)

	var stored models.Product
	require.NoError(t, db.First(&stored, product.ID).Error)
	assert.Equal(t, models.ProductStatusPendingReview, stored.Status)
}

// The rejection reason is stored verbatim and visible to the vendor.
func TestRejectProductStoresReason(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	admin := createAdmin(t, db)
	vendor := createVendor(t, db, models.VendorStatusApproved)
	product := createProduct(t, db, vendor.ID, models.ProductStatusPendingReview)

	reason := "brand name misspelled, photos are stock images"
	rejected, err := svc.RejectProduct(adminActor(admin), product.ID, reason)
	require.NoError(t, err)
	assert.Equal(t, models.ProductStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, reason, *rejected.RejectionReason)

	productSvc := NewProductService(db)
	own, err := productSvc.GetOwnProduct(vendor.ID, product.ID)
	require.NoError(t, err)
	require.NotNil(t, own.RejectionReason)
	assert.Equal(t, reason, *own.RejectionReason)
}

func TestApproveProductIllegalFromDraft(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	admin := createAdmin(t, db)
	vendor := createVendor(t, db, models.VendorStatusApproved)
	product := createProduct(t, db, vendor.ID, models.ProductStatusDraft)

	_, err := svc.ApproveProduct(adminActor(admin), product.ID, "")
	assert.True(t, apperrors.IsInvalidTransition(err))
}

func TestReviewQueueOldestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	vendor := createVendor(t, db, models.VendorStatusApproved)

	first := createProduct(t, db, vendor.ID, models.ProductStatusPendingReview)
	second := createProduct(t, db, vendor.ID, models.ProductStatusPendingReview)
	createProduct(t, db, vendor.ID, models.ProductStatusDraft)

	queue, total, err := svc.GetReviewQueue(utils.PaginationParams{Page: 1, Limit: 20, Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, queue, 2)
	assert.Equal(t, first.ID, queue[0].ID)
	assert.Equal(t, second.ID, queue[1].ID)
}

func TestDeleteVendorRemovesProductsAndKeepsLog(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	admin := createAdmin(t, db)
	vendor := createVendor(t, db, models.VendorStatusRejected)
	createProduct(t, db, vendor.ID, models.ProductStatusDraft)

	require.NoError(t, svc.DeleteVendor(adminActor(admin), vendor.ID, "rejected application cleanup"))

	var vendorCount, productCount, logCount int64
	db.Model(&models.VendorAccount{}).Count(&vendorCount)
	db.Model(&models.Product{}).Where("vendor_id = ?", vendor.ID).Count(&productCount)
	db.Model(&models.AccountLog{}).Where("action = ?", "vendor.delete").Count(&logCount)

	assert.Zero(t, vendorCount)
	assert.Zero(t, productCount)
	assert.Equal(t, int64(1), logCount)
}

func TestSetUserStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	admin := createAdmin(t, db)
	customer := createCustomer(t, db)

	disabled, err := svc.SetUserStatus(adminActor(admin), customer.ID, models.UserStatusDisabled, "chargeback abuse")
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusDisabled, disabled.Status)

	_, err = svc.SetUserStatus(adminActor(admin), customer.ID, "banned", "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	createCustomer(t, db)
	createCustomer(t, db)
	createAdmin(t, db)

	approvedVendor := createVendor(t, db, models.VendorStatusApproved)
	suspendedVendor := createVendor(t, db, models.VendorStatusSuspended)
	createVendor(t, db, models.VendorStatusPending)

	createProduct(t, db, approvedVendor.ID, models.ProductStatusApproved)
	createProduct(t, db, approvedVendor.ID, models.ProductStatusPendingReview)
	createProduct(t, db, suspendedVendor.ID, models.ProductStatusApproved)

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalCustomers)
	assert.Equal(t, int64(3), stats.TotalVendors)
	assert.Equal(t, int64(1), stats.PendingVendors)
	assert.Equal(t, int64(1), stats.ApprovedVendors)
	assert.Equal(t, int64(1), stats.SuspendedVendors)
	assert.Equal(t, int64(3), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.PendingProducts)
	// Only the approved product of the approved vendor is live.
	assert.Equal(t, int64(1), stats.LiveProducts)
}
