// internal/services/vendor_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spareshub/spareshub-backend/internal/apperrors"
	"github.com/spareshub/spareshub-backend/internal/models"
)

type VendorService struct {
	db                  *gorm.DB
	notificationService *NotificationService
}

// RegisterVendorRequest carries every field the three-step registration wizard
// collects. The wizard is a client-side sequencing device only: the server
// validates everything here in one shot and either creates the full row in
// pending or creates nothing.
type RegisterVendorRequest struct {
	// Step 1: business details
	BusinessName  string `json:"business_name"`
	ContactPerson string `json:"contact_person"`
	PhoneNumber   string `json:"phone_number"`
	Email         string `json:"email"`
	BusinessType  string `json:"business_type"`
	Website       string `json:"website"`

	// Step 2: legal and address
	LegalBusinessName string `json:"legal_business_name"`
	TaxID             string `json:"tax_id"`
	Address           string `json:"address"`
	City              string `json:"city"`
	State             string `json:"state"`
	PostalCode        string `json:"postal_code"`

	// Step 3: banking, KYC documents, credentials
	BankAccountHolder       string `json:"bank_account_holder"`
	BankName                string `json:"bank_name"`
	BankRoutingNumber       string `json:"bank_routing_number"`
	BankAccountNumber       string `json:"bank_account_number"`
	BankAccountConfirmation string `json:"bank_account_confirmation"`
	PanDocumentURL          string `json:"pan_document_url"`
	ChequeDocumentURL       string `json:"cheque_document_url"`
	Password                string `json:"password"`
	PasswordConfirmation    string `json:"password_confirmation"`
}

// Validate reports the first unmet precondition by field name. Field order
// follows the registration wizard.
func (r *RegisterVendorRequest) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"business_name", r.BusinessName},
		{"contact_person", r.ContactPerson},
		{"phone_number", r.PhoneNumber},
		{"email", r.Email},
		{"legal_business_name", r.LegalBusinessName},
		{"tax_id", r.TaxID},
		{"address", r.Address},
		{"city", r.City},
		{"postal_code", r.PostalCode},
		{"bank_account_holder", r.BankAccountHolder},
		{"bank_name", r.BankName},
		{"bank_routing_number", r.BankRoutingNumber},
		{"bank_account_number", r.BankAccountNumber},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.NewValidationError(f.field, "required")
		}
	}

	if r.BankAccountNumber != r.BankAccountConfirmation {
		return apperrors.NewValidationError("bank_account_confirmation", "does not match account number")
	}
	if strings.TrimSpace(r.PanDocumentURL) == "" {
		return apperrors.NewValidationError("pan_document", "required")
	}
	if strings.TrimSpace(r.ChequeDocumentURL) == "" {
		return apperrors.NewValidationError("cheque_document", "required")
	}
	if r.Password == "" {
		return apperrors.NewValidationError("password", "required")
	}
	if r.Password != r.PasswordConfirmation {
		return apperrors.NewValidationError("password_confirmation", "does not match password")
	}

	return nil
}

type UpdateVendorProfileRequest struct {
	BusinessName  string `json:"business_name,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	BusinessType  string `json:"business_type,omitempty"`
	Website       string `json:"website,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
}

type VendorDashboard struct {
	TotalProducts    int64 `json:"total_products"`
	DraftProducts    int64 `json:"draft_products"`
	PendingProducts  int64 `json:"pending_products"`
	ApprovedProducts int64 `json:"approved_products"`
	RejectedProducts int64 `json:"rejected_products"`
}

func NewVendorService(db *gorm.DB, notificationService *NotificationService) *VendorService {
	return &VendorService{
		db:                  db,
		notificationService: notificationService,
	}
}

// Register validates the complete KYC payload and creates the vendor row in
// pending. Validation runs to completion before any write; a failure leaves no
// partial state.
func (s *VendorService) Register(req *RegisterVendorRequest) (*models.VendorAccount, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// A rejected vendor row blocks re-registration under the same email until
	// an admin hard-deletes it.
	var existing models.VendorAccount
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, apperrors.NewValidationError("email", "a vendor account with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	vendor := &models.VendorAccount{
		Email:             email,
		BusinessName:      req.BusinessName,
		ContactPerson:     req.ContactPerson,
		PhoneNumber:       req.PhoneNumber,
		BusinessType:      req.BusinessType,
		Website:           req.Website,
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
		Status:            models.VendorStatusPending,
	}

	if err := vendor.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(vendor).Error; err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	return vendor, nil
}

func (s *VendorService) GetVendor(id uuid.UUID) (*models.VendorAccount, error) {
	var vendor models.VendorAccount
	if err := s.db.First(&vendor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("vendor")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &vendor, nil
}

func (s *VendorService) GetVendorByEmail(email string) (*models.VendorAccount, error) {
	var vendor models.VendorAccount
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("vendor")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &vendor, nil
}

// UpdateProfile edits profile fields only. Status is never touched here; that
// belongs to the admin moderation facade.
func (s *VendorService) UpdateProfile(id uuid.UUID, req *UpdateVendorProfileRequest) (*models.VendorAccount, error) {
	vendor, err := s.GetVendor(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.BusinessName != "" {
		updates["business_name"] = req.BusinessName
	}
	if req.ContactPerson != "" {
		updates["contact_person"] = req.ContactPerson
	}
	if req.PhoneNumber != "" {
		updates["phone_number"] = req.PhoneNumber
	}
	if req.BusinessType != "" {
		updates["business_type"] = req.BusinessType
	}
	if req.Website != "" {
		updates["website"] = req.Website
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.City != "" {
		updates["city"] = req.City
	}
	if req.State != "" {
		updates["state"] = req.State
	}
	if req.PostalCode != "" {
		updates["postal_code"] = req.PostalCode
	}

	if len(updates) > 0 {
		if err := s.db.Model(vendor).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update vendor profile: %w", err)
		}
	}

	return vendor, nil
}

func (s *VendorService) GetDashboard(vendorID uuid.UUID) (*VendorDashboard, error) {
	if _, err := s.GetVendor(vendorID); err != nil {
		return nil, err
	}

	dashboard := &VendorDashboard{}
	base := func() *gorm.DB {
		return s.db.Model(&models.Product{}).Where("vendor_id = ?", vendorID)
	}

	base().Count(&dashboard.TotalProducts)
	base().Where("status = ?", models.ProductStatusDraft).Count(&dashboard.DraftProducts)
	base().Where("status = ?", models.ProductStatusPendingReview).Count(&dashboard.PendingProducts)
	base().Where("status = ?", models.ProductStatusApproved).Count(&dashboard.ApprovedProducts)
	base().Where("status = ?", models.ProductStatusRejected).Count(&dashboard.RejectedProducts)

	return dashboard, nil
}
