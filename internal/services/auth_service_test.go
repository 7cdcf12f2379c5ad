// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spareshub/spareshub-backend/internal/apperrors"
	"github.com/spareshub/spareshub-backend/internal/models"
	"github.com/spareshub/spareshub-backend/internal/utils"
)

func TestRegisterCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())

	resp, err := svc.RegisterCustomer(&RegisterCustomerRequest{
		FullName: "Anita Desai",
		Email:    "Anita@Example.in",
		Password: "Str0ngPass1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, resp.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	// Email is normalized to lower case.
	assert.Equal(t, "anita@example.in", resp.User.Email)
	assert.Equal(t, models.UserTypeCustomer, resp.User.UserType)

	// Duplicate registration is a conflict.
	_, err = svc.RegisterCustomer(&RegisterCustomerRequest{
		FullName: "Anita Again",
		Email:    "anita@example.in",
		Password: "Str0ngPass1",
	})
	assert.True(t, apperrors.IsConflict(err))
}

func TestRegisterCustomerWeakPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())

	_, err := svc.RegisterCustomer(&RegisterCustomerRequest{
		FullName: "Anita Desai",
		Email:    "anita@example.in",
		Password: "weak",
	})
	require.Error(t, err)
}

func TestLoginUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())
	customer := createCustomer(t, db)

	resp, err := svc.LoginUser(&LoginRequest{Email: customer.Email, Password: "Str0ngPass1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, resp.Role)

	claims, err := utils.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, customer.ID.String(), claims.UserID)
	assert.Equal(t, models.RoleCustomer, claims.Role)

	_, err = svc.LoginUser(&LoginRequest{Email: customer.Email, Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.LoginUser(&LoginRequest{Email: "nobody@example.in", Password: "Str0ngPass1"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLoginDisabledUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())
	customer := createCustomer(t, db)
	require.NoError(t, db.Model(customer).Update("status", models.UserStatusDisabled).Error)

	_, err := svc.LoginUser(&LoginRequest{Email: customer.Email, Password: "Str0ngPass1"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestAdminLoginCarriesAdminRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())
	admin := createAdmin(t, db)

	resp, err := svc.LoginUser(&LoginRequest{Email: admin.Email, Password: "Adm1nPass!"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.Role)

	claims, err := utils.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

// Vendors authenticate against their own credential store, in any status.
func TestLoginVendorAnyStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())

	for _, status := range []models.VendorStatus{
		models.VendorStatusPending,
		models.VendorStatusApproved,
		models.VendorStatusSuspended,
	} {
		vendor := createVendor(t, db, status)
		resp, err := svc.LoginVendor(&LoginRequest{Email: vendor.Email, Password: "Str0ngPass"})
		require.NoError(t, err, "vendor login in status %s", status)
		assert.Equal(t, models.RoleVendor, resp.Role)
		assert.Equal(t, vendor.ID, resp.Vendor.ID)
	}
}

func TestRefreshTokenRoutesByRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())

	customer := createCustomer(t, db)
	userResp, err := svc.LoginUser(&LoginRequest{Email: customer.Email, Password: "Str0ngPass1"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(userResp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, refreshed.Role)
	require.NotNil(t, refreshed.User)
	assert.Equal(t, customer.ID, refreshed.User.ID)

	vendor := createVendor(t, db, models.VendorStatusApproved)
	vendorResp, err := svc.LoginVendor(&LoginRequest{Email: vendor.Email, Password: "Str0ngPass"})
	require.NoError(t, err)

	refreshed, err = svc.RefreshToken(vendorResp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleVendor, refreshed.Role)
	require.NotNil(t, refreshed.Vendor)
	assert.Equal(t, vendor.ID, refreshed.Vendor.ID)

	_, err = svc.RefreshToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
