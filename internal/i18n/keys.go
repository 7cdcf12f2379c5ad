// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"

	// User Management
	KeyUserProfileUpdated = "user.profile_updated"
	KeyUserNotFound       = "user.not_found"

	// Vendors
	KeyVendorRegistered      = "vendor.registered"
	KeyVendorNotFound        = "vendor.not_found"
	KeyVendorApproved        = "vendor.approved"
	KeyVendorRejected        = "vendor.rejected"
	KeyVendorSuspended       = "vendor.suspended"
	KeyVendorDeleted         = "vendor.deleted"
	KeyVendorEmailExists     = "vendor.email_exists"
	KeyVendorNotApproved     = "vendor.not_approved"
	KeyVendorProfileUpdated  = "vendor.profile_updated"
	KeyVendorAccessDenied    = "vendor.access_denied"
	KeyVendorPendingApproval = "vendor.pending_approval"

	// Products
	KeyProductCreated     = "product.created"
	KeyProductUpdated     = "product.updated"
	KeyProductDeleted     = "product.deleted"
	KeyProductNotFound    = "product.not_found"
	KeyProductSubmitted   = "product.submitted"
	KeyProductApproved    = "product.approved"
	KeyProductRejected    = "product.rejected"
	KeyProductUnpublished = "product.unpublished"
	KeyProductArchived    = "product.archived"
	KeyProductUnavailable = "product.unavailable"

	// Garage
	KeyVehicleAdded    = "vehicle.added"
	KeyVehicleUpdated  = "vehicle.updated"
	KeyVehicleRemoved  = "vehicle.removed"
	KeyVehicleNotFound = "vehicle.not_found"

	// Addresses
	KeyAddressAdded    = "address.added"
	KeyAddressUpdated  = "address.updated"
	KeyAddressRemoved  = "address.removed"
	KeyAddressNotFound = "address.not_found"

	// Cart
	KeyCartItemAdded   = "cart.item_added"
	KeyCartItemUpdated = "cart.item_updated"
	KeyCartItemRemoved = "cart.item_removed"
	KeyCartNotFound    = "cart.not_found"

	// Admin
	KeyAdminActionSuccess = "admin.action_success"
	KeyAdminAccessDenied  = "admin.access_denied"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileInvalidType   = "file.invalid_type"
	KeyFileTooLarge      = "file.too_large"
)
