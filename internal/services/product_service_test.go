// internal/services/product_service_test.go
package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spareshub/spareshub-backend/internal/apperrors"
	"github.com/spareshub/spareshub-backend/internal/models"
	"github.com/spareshub/spareshub-backend/internal/utils"
)

func validProductRequest() *ProductRequest {
	return &ProductRequest{
		Name:            "Air Filter Element",
		SKU:             "AF-1001",
		OEMReference:    "28113-2W100",
		Category:        "Filters",
		Brand:           "Mahle",
		BrandType:       models.BrandTypeAftermarket,
		Condition:       models.ConditionNew,
		MRP:             decimal.NewFromInt(900),
		Price:           decimal.NewFromInt(749),
		QuantityInStock: 25,
		Fitments: models.FitmentList{
			{Make: "Hyundai", Model: "Creta", YearFrom: 2015, YearTo: 2020},
		},
		Description: "High-flow air filter element.",
	}
}

func TestCreateDraftStartsInDraft(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	vendor := createVendor(t, db, models.VendorStatusApproved)

	product, err := svc.CreateDraft(vendor.ID, validProductRequest())
	require.NoError(t, err)
	assert.Equal(t, models.ProductStatusDraft, product.Status)
	assert.Nil(t, product.RejectionReason)
}

func TestCreateDraftValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	vendor := createVendor(t, db, models.VendorStatusApproved)

	req := validProductRequest()
	req.Name = ""
	_, err := svc.CreateDraft(vendor.ID, req)
	assert.True(t, apperrors.IsValidation(err))

	var verr *apperrors.ValidationError

	req = validProductRequest()
	req.Price = decimal.Zero
	_, err = svc.CreateDraft(vendor.ID, req)
	require.ErrorAs(t, err, &verr, "zero price must be rejected")
	assert.Equal(t, "price", verr.Field)

	req = validProductRequest()
	req.Price = decimal.NewFromInt(-5)
	_, err = svc.CreateDraft(vendor.ID, req)
	assert.True(t, apperrors.IsValidation(err))

	req = validProductRequest()
	req.Price = decimal.NewFromInt(1200)
	req.MRP = decimal.NewFromInt(1000)
	_, err = svc.CreateDraft(vendor.ID, req)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)
}

// Only name, category and a positive price are required; everything else on
// the listing is optional.
func TestCreateDraftMinimalFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	vendor := createVendor(t, db, models.VendorStatusApproved)

	req := &ProductRequest{
		Name:     "Brake Pad",
		Category: "Brakes",
		Price:    decimal.NewFromFloat(25.00),
	}
	product, err := svc.CreateDraft(vendor.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.ProductStatusDraft, product.Status)
	assert.Empty(t, product.Brand)
}

// A listing can skip the draft stage and be created straight into review.
func TestCreateSubmittedEntersPendingReview(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	vendor := createVendor(t, db, models.VendorStatusApproved)

	product, err := svc.CreateSubmitted(vendor.ID, validProductRequest())
	require.NoError(t, err)
	assert.Equal(t, models.ProductStatusPendingReview, product.Status)
	assert.Nil(t, product.RejectionReason)

	req := validProductRequest()
	req.Price = decimal.Zero
	_, err = svc.CreateSubmitted(vendor.ID, req)
	assert.True(t, apperrors.IsValidation(err), "submit-on-create runs the same preconditions")
}

func TestSubmitForReviewFromDraft(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	vendor := createVendor(t, db, models.VendorStatusApproved)
	product := createProduct(t, db, vendor.ID, models.ProductStatusDraft)

	submitted, err := svc.SubmitForReview(vendor.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProductStatusPendingReview, submitted.Status)
}

// Resubmitting a rejected listing clears the stored rejection reason.
func TestSubmitForReviewClearsRejectionReason(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	vendor := createVendor(t, db, models.VendorStatusApproved)

	product := createProduct(t, db, vendor.ID, models.ProductStatusRejected)
	reason := "images do not match the part"
	require.NoError(t, db.Model(product).Update("rejection_reason", reason).Error)

	submitted, err := svc.SubmitForReview(vendor.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProductStatusPendingReview, submitted.Status)
	assert.Nil(t, submitted.RejectionReason)
}

func TestSubmitForReviewFromUnpublished(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	vendor := createVendor(t, db, models.VendorStatusApproved)
	product := createProduct(t, db, vendor.ID, models.ProductStatusUnpublished)

	submitted, err := svc.SubmitForReview(vendor.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProductStatusPendingReview, submitted.Status)
}

func TestSubmitForReviewIllegalSources(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	vendor := createVendor(t, db, models.VendorStatusApproved)

	for _, status := range []models.ProductStatus{
		models.ProductStatusPendingReview,
		models.ProductStatusApproved,
		models.ProductStatusArchived,
	} {
		product := createProduct(t, db, vendor.ID, status)
		_, err := svc.SubmitForReview(vendor.ID, product.ID)
		require.Error(t, err, "submit from %s should fail", status)
		assert.True(t, apperrors.IsInvalidTransition(err))

		var stored models.Product
		require.NoError(t, db.First(&stored, product.ID).Error)
		assert.Equal(t, status, stored.Status, "status must be unchanged after failed submit")
	}
}

func TestUpdateAllowedOnlyWhileEditable(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	vendor := createVendor(t, db, models.VendorStatusApproved)

	editable := []models.ProductStatus{models.ProductStatusDraft, models.ProductStatusRejected}
	for _, status := range editable {
		product := createProduct(t, db, vendor.ID, status)
		updated, err := svc.Update(vendor.ID, product.ID, validProductRequest())
		require.NoError(t, err, "edit in %s should succeed", status)
		assert.Equal(t, "Air Filter Element", updated.Name)
		assert.Equal(t, status, updated.Status, "edit must not change status")
	}

	frozen := []models.ProductStatus{
		models.ProductStatusPendingReview,
		models.ProductStatusApproved,
		models.ProductStatusUnpublished,
		models.ProductStatusArchived,
	}
	for _, status := range frozen {
		product := createProduct(t, db, vendor.ID, status)
		_, err := svc.Update(vendor.ID, product.ID, validProductRequest())
		require.Error(t, err, "edit in %s should fail", status)
		assert.True(t, apperrors.IsInvalidTransition(err))
	}
}

func TestUnpublishAndArchive(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	vendor := createVendor(t, db, models.VendorStatusApproved)

	product := createProduct(t, db, vendor.ID, models.ProductStatusApproved)
	unpublished, err := svc.Unpublish(vendor.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProductStatusUnpublished, unpublished.Status)

	// unpublished listings cannot be archived directly
	_, err = svc.Archive(vendor.ID, product.ID)
	assert.True(t, apperrors.IsInvalidTransition(err))

	other := createProduct(t, db, vendor.ID, models.ProductStatusApproved)
	archived, err := svc.Archive(vendor.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProductStatusArchived, archived.Status)

	// archived is terminal
	_, err = svc.SubmitForReview(vendor.ID, other.ID)
	assert.True(t, apperrors.IsInvalidTransition(err))
}

func TestProductOwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	owner := createVendor(t, db, models.VendorStatusApproved)
	intruder := createVendor(t, db, models.VendorStatusApproved)
	product := createProduct(t, db, owner.ID, models.ProductStatusDraft)

	_, err := svc.GetOwnProduct(intruder.ID, product.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.SubmitForReview(intruder.ID, product.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestDeleteDraftOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	vendor := createVendor(t, db, models.VendorStatusApproved)

	draft := createProduct(t, db, vendor.ID, models.ProductStatusDraft)
	require.NoError(t, svc.DeleteDraft(vendor.ID, draft.ID))

	approved := createProduct(t, db, vendor.ID, models.ProductStatusApproved)
	err := svc.DeleteDraft(vendor.ID, approved.ID)
	assert.True(t, apperrors.IsInvalidTransition(err))
}

func TestListOwnFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	vendor := createVendor(t, db, models.VendorStatusApproved)
	createProduct(t, db, vendor.ID, models.ProductStatusDraft)
	createProduct(t, db, vendor.ID, models.ProductStatusApproved)
	createProduct(t, db, vendor.ID, models.ProductStatusApproved)

	params := utils.PaginationParams{Page: 1, Limit: 20}

	all, err := svc.ListOwn(vendor.ID, "", params)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)

	approved, err := svc.ListOwn(vendor.ID, models.ProductStatusApproved, params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), approved.Total)
}
