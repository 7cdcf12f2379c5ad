// internal/services/vendor_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spareshub/spareshub-backend/internal/apperrors"
	"github.com/spareshub/spareshub-backend/internal/models"
)

func TestVendorRegisterValidatesEachRequiredField(t *testing.T) {
	db := newTestDB(t)
	svc := NewVendorService(db, NewNotificationService(newTestConfig()))

	mutations := []struct {
		field  string
		mutate func(r *RegisterVendorRequest)
	}{
		{"business_name", func(r *RegisterVendorRequest) { r.BusinessName = "" }},
		{"contact_person", func(r *RegisterVendorRequest) { r.ContactPerson = "" }},
		{"phone_number", func(r *RegisterVendorRequest) { r.PhoneNumber = "" }},
		{"email", func(r *RegisterVendorRequest) { r.Email = "" }},
		{"legal_business_name", func(r *RegisterVendorRequest) { r.LegalBusinessName = "" }},
		{"tax_id", func(r *RegisterVendorRequest) { r.TaxID = "" }},
		{"address", func(r *RegisterVendorRequest) { r.Address = "" }},
		{"city", func(r *RegisterVendorRequest) { r.City = "" }},
		{"postal_code", func(r *RegisterVendorRequest) { r.PostalCode = "" }},
		{"bank_account_holder", func(r *RegisterVendorRequest) { r.BankAccountHolder = "" }},
		{"bank_name", func(r *RegisterVendorRequest) { r.BankName = "" }},
		{"bank_routing_number", func(r *RegisterVendorRequest) { r.BankRoutingNumber = "" }},
		{"bank_account_number", func(r *RegisterVendorRequest) {
			r.BankAccountNumber = ""
			r.BankAccountConfirmation = ""
		}},
		{"pan_document", func(r *RegisterVendorRequest) { r.PanDocumentURL = "" }},
		{"cheque_document", func(r *RegisterVendorRequest) { r.ChequeDocumentURL = "" }},
		{"password", func(r *RegisterVendorRequest) {
			r.Password = ""
			r.PasswordConfirmation = ""
		}},
	}

	for _, m := range mutations {
		t.Run(m.field, func(t *testing.T) {
			req := validVendorRequest()
			m.mutate(req)

			vendor, err := svc.Register(req)
			assert.Nil(t, vendor)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))

			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, m.field, verr.Field)

			// A failed registration must leave no partial row behind.
			var count int64
			db.Model(&models.VendorAccount{}).Count(&count)
			assert.Zero(t, count)
		})
	}
}

func TestVendorRegisterAccountNumberConfirmationMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewVendorService(db, NewNotificationService(newTestConfig()))

	req := validVendorRequest()
	req.BankAccountConfirmation = req.BankAccountNumber + "9"

	vendor, err := svc.Register(req)
	assert.Nil(t, vendor)

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "bank_account_confirmation", verr.Field)

	var count int64
	db.Model(&models.VendorAccount{}).Count(&count)
	assert.Zero(t, count)
}

func TestVendorRegisterPasswordConfirmationMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewVendorService(db, NewNotificationService(newTestConfig()))

	req := validVendorRequest()
	req.PasswordConfirmation = "different"

	_, err := svc.Register(req)
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password_confirmation", verr.Field)
}

func TestVendorRegisterCreatesPendingAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewVendorService(db, NewNotificationService(newTestConfig()))

	req := validVendorRequest()
	vendor, err := svc.Register(req)
	require.NoError(t, err)

	assert.Equal(t, models.VendorStatusPending, vendor.Status)
	assert.NotEqual(t, req.Password, vendor.PasswordHash)
	assert.NoError(t, vendor.CheckPassword(req.Password))

	var stored models.VendorAccount
	require.NoError(t, db.First(&stored, vendor.ID).Error)
	assert.Equal(t, models.VendorStatusPending, stored.Status)
	assert.Equal(t, req.BusinessName, stored.BusinessName)
	assert.Equal(t, req.TaxID, stored.TaxID)
	assert.Equal(t, req.PanDocumentURL, stored.PanDocumentURL)
}

func TestVendorRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewVendorService(db, NewNotificationService(newTestConfig()))

	req := validVendorRequest()
	_, err := svc.Register(req)
	require.NoError(t, err)

	dup := validVendorRequest()
	dup.Email = req.Email
	_, err = svc.Register(dup)

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
}

func TestVendorUpdateProfileDoesNotTouchStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewVendorService(db, NewNotificationService(newTestConfig()))

	vendor := createVendor(t, db, models.VendorStatusApproved)

	updated, err := svc.UpdateProfile(vendor.ID, &UpdateVendorProfileRequest{
		BusinessName: "Sharma Auto Spares & Services",
		City:         "Mumbai",
	})
	require.NoError(t, err)
	assert.Equal(t, models.VendorStatusApproved, updated.Status)

	var stored models.VendorAccount
	require.NoError(t, db.First(&stored, vendor.ID).Error)
	assert.Equal(t, "Sharma Auto Spares & Services", stored.BusinessName)
	assert.Equal(t, "Mumbai", stored.City)
	assert.Equal(t, models.VendorStatusApproved, stored.Status)
}

func TestVendorDashboardCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewVendorService(db, NewNotificationService(newTestConfig()))

	vendor := createVendor(t, db, models.VendorStatusApproved)
	createProduct(t, db, vendor.ID, models.ProductStatusDraft)
	createProduct(t, db, vendor.ID, models.ProductStatusPendingReview)
	createProduct(t, db, vendor.ID, models.ProductStatusApproved)
	createProduct(t, db, vendor.ID, models.ProductStatusApproved)
	createProduct(t, db, vendor.ID, models.ProductStatusRejected)

	dashboard, err := svc.GetDashboard(vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), dashboard.TotalProducts)
	assert.Equal(t, int64(1), dashboard.DraftProducts)
	assert.Equal(t, int64(1), dashboard.PendingProducts)
	assert.Equal(t, int64(2), dashboard.ApprovedProducts)
	assert.Equal(t, int64(1), dashboard.RejectedProducts)
}
