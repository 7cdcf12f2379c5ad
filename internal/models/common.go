// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeAdmin    UserType = "admin"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

type VendorStatus string

const (
	VendorStatusPending   VendorStatus = "pending"
	VendorStatusApproved  VendorStatus = "approved"
	VendorStatusRejected  VendorStatus = "rejected"
	VendorStatusSuspended VendorStatus = "suspended"
)

type ProductStatus string

const (
	ProductStatusDraft         ProductStatus = "draft"
	ProductStatusPendingReview ProductStatus = "pending_review"
	ProductStatusApproved      ProductStatus = "approved"
	ProductStatusRejected      ProductStatus = "rejected"
	ProductStatusUnpublished   ProductStatus = "unpublished"
	ProductStatusArchived      ProductStatus = "archived"
)

type BrandType string

const (
	BrandTypeOEM         BrandType = "OEM"
	BrandTypeAftermarket BrandType = "Aftermarket"
)

type ProductCondition string

const (
	ConditionNew         ProductCondition = "New"
	ConditionUsed        ProductCondition = "Used"
	ConditionRefurbished ProductCondition = "Refurbished"
)

// Principal roles carried in JWT claims
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)

// VehicleFitment describes one vehicle a part is compatible with.
type VehicleFitment struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	Variant  string `json:"variant,omitempty"`
	YearFrom int    `json:"year_from,omitempty"`
	YearTo   int    `json:"year_to,omitempty"`
}

// FitmentList is stored as a JSON column.
type FitmentList []VehicleFitment

func (f FitmentList) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal(f)
}

func (f *FitmentList) Scan(value interface{}) error {
	if value == nil {
		*f = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for FitmentList: %T", value)
	}

	return json.Unmarshal(bytes, f)
}
