// internal/models/vendor.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// VendorAccount is a marketplace seller. It carries its own credential and is
// not a User row; the onboarding lifecycle is driven by Status alone.
type VendorAccount struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`

	// Business profile
	BusinessName      string `json:"business_name" gorm:"size:255;not null"`
	ContactPerson     string `json:"contact_person" gorm:"size:100;not null"`
	PhoneNumber       string `json:"phone_number" gorm:"size:20;not null"`
	BusinessType      string `json:"business_type" gorm:"size:50"`
	LegalBusinessName string `json:"legal_business_name" gorm:"size:255;not null"`
	TaxID             string `json:"tax_id" gorm:"size:30;not null"`
	Address           string `json:"address" gorm:"type:text;not null"`
	City              string `json:"city" gorm:"size:100;not null"`
	State             string `json:"state" gorm:"size:100"`
	PostalCode        string `json:"postal_code" gorm:"size:12;not null"`
	Website           string `json:"website" gorm:"size:255"`

	// Banking and KYC
	BankAccountHolder string `json:"bank_account_holder" gorm:"size:100;not null"`
	BankName          string `json:"bank_name" gorm:"size:100;not null"`
	BankRoutingNumber string `json:"bank_routing_number" gorm:"size:20;not null"`
	BankAccountNumber string `json:"-" gorm:"size:30;not null"`
	PanDocumentURL    string `json:"pan_document_url" gorm:"size:512;not null"`
	ChequeDocumentURL string `json:"cheque_document_url" gorm:"size:512;not null"`

	Status      VendorStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	LastLoginAt *time.Time   `json:"last_login_at"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:VendorID"`
}

func (v *VendorAccount) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	v.PasswordHash = string(hashedPassword)
	return nil
}

func (v *VendorAccount) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(v.PasswordHash), []byte(password))
}

// vendorTransitionSources maps a target status to the statuses a vendor may
// legally move from. rejected is terminal: it appears only as a target.
var vendorTransitionSources = map[VendorStatus][]VendorStatus{
	VendorStatusApproved:  {VendorStatusPending, VendorStatusSuspended},
	VendorStatusRejected:  {VendorStatusPending},
	VendorStatusSuspended: {VendorStatusApproved},
}

// VendorTransitionSources returns the legal source statuses for a transition
// into target. The returned slice is shared and must not be mutated.
func VendorTransitionSources(target VendorStatus) []VendorStatus {
	return vendorTransitionSources[target]
}

func (s VendorStatus) CanTransitionTo(target VendorStatus) bool {
	for _, from := range vendorTransitionSources[target] {
		if from == s {
			return true
		}
	}
	return false
}
