// internal/services/setup_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spareshub/spareshub-backend/internal/config"
	"github.com/spareshub/spareshub-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection so every query sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.VendorAccount{},
		&models.Product{},
		&models.Vehicle{},
		&models.Address{},
		&models.CartItem{},
		&models.AccountLog{},
	))

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
		Frontend: config.FrontendConfig{BaseURL: "http://localhost:3000"},
	}
}

var vendorSeq int

func validVendorRequest() *RegisterVendorRequest {
	vendorSeq++
	return &RegisterVendorRequest{
		BusinessName:            "Sharma Auto Spares",
		ContactPerson:           "Rakesh Sharma",
		PhoneNumber:             "9876543210",
		Email:                   fmt.Sprintf("vendor%d@example.in", vendorSeq),
		LegalBusinessName:       "Sharma Auto Spares Pvt Ltd",
		TaxID:                   "27AAACS1234A1Z5",
		Address:                 "12 MG Road",
		City:                    "Pune",
		State:                   "Maharashtra",
		PostalCode:              "411001",
		BankAccountHolder:       "Sharma Auto Spares Pvt Ltd",
		BankName:                "HDFC Bank",
		BankRoutingNumber:       "HDFC0000123",
		BankAccountNumber:       "50100123456789",
		BankAccountConfirmation: "50100123456789",
		PanDocumentURL:          "kyc-documents/20250101_abcd1234.pdf",
		ChequeDocumentURL:       "kyc-documents/20250101_efgh5678.pdf",
		Password:                "Str0ngPass",
		PasswordConfirmation:    "Str0ngPass",
	}
}

func createVendor(t *testing.T, db *gorm.DB, status models.VendorStatus) *models.VendorAccount {
	t.Helper()

	req := validVendorRequest()
	vendor := &models.VendorAccount{
		Email:             req.Email,
		BusinessName:      req.BusinessName,
		ContactPerson:     req.ContactPerson,
		PhoneNumber:       req.PhoneNumber,
		LegalBusinessName: req.LegalBusinessName,
		TaxID:             req.TaxID,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		PostalCode:        req.PostalCode,
		BankAccountHolder: req.BankAccountHolder,
		BankName:          req.BankName,
		BankRoutingNumber: req.BankRoutingNumber,
		BankAccountNumber: req.BankAccountNumber,
		PanDocumentURL:    req.PanDocumentURL,
		ChequeDocumentURL: req.ChequeDocumentURL,
		Status:            status,
	}
	require.NoError(t, vendor.SetPassword("Str0ngPass"))
	require.NoError(t, db.Create(vendor).Error)
	return vendor
}

func createProduct(t *testing.T, db *gorm.DB, vendorID uuid.UUID, status models.ProductStatus) *models.Product {
	t.Helper()

	product := &models.Product{
		VendorID:        vendorID,
		Name:            "Brake Pad Set Front",
		SKU:             "BP-" + uuid.NewString()[:8],
		OEMReference:    "58101-1JA00",
		Category:        "Brakes",
		Brand:           "Bosch",
		BrandType:       models.BrandTypeAftermarket,
		Condition:       models.ConditionNew,
		MRP:             decimal.NewFromInt(2500),
		Price:           decimal.NewFromInt(1999),
		QuantityInStock: 10,
		Status:          status,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func createCustomer(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		FullName: "Anita Desai",
		Email:    fmt.Sprintf("customer-%s@example.in", uuid.NewString()[:8]),
		UserType: models.UserTypeCustomer,
		Status:   models.UserStatusActive,
	}
	require.NoError(t, user.SetPassword("Str0ngPass1"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		FullName: "Platform Admin",
		Email:    fmt.Sprintf("admin-%s@example.in", uuid.NewString()[:8]),
		UserType: models.UserTypeAdmin,
		Status:   models.UserStatusActive,
	}
	require.NoError(t, user.SetPassword("Adm1nPass!"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func adminActor(admin *models.User) Actor {
	return Actor{ID: admin.ID, Role: models.RoleAdmin, IPAddress: "127.0.0.1"}
}

func newAdminService(db *gorm.DB) *AdminService {
	return NewAdminService(db, NewNotificationService(newTestConfig()))
}
