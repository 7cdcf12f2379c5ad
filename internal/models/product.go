// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	VendorID        uuid.UUID        `json:"vendor_id" gorm:"type:uuid;not null;index"`
	Name            string           `json:"name" gorm:"size:255;not null"`
	SKU             string           `json:"sku" gorm:"size:64;index"`
	OEMReference    string           `json:"oem_reference" gorm:"size:64;index"`
	Category        string           `json:"category" gorm:"size:100;index"`
	Brand           string           `json:"brand" gorm:"size:100;index"`
	BrandType       BrandType        `json:"brand_type" gorm:"type:varchar(20)"`
	Condition       ProductCondition `json:"condition" gorm:"type:varchar(20)"`
	MRP             decimal.Decimal  `json:"mrp" gorm:"type:decimal(10,2)"`
	Price           decimal.Decimal  `json:"price" gorm:"type:decimal(10,2);not null"`
	QuantityInStock int              `json:"quantity_in_stock" gorm:"default:0"`
	Images          pq.StringArray   `json:"images" gorm:"type:text[]"`
	Fitments        FitmentList      `json:"compatible_vehicles" gorm:"type:jsonb"`
	Description     string           `json:"description" gorm:"type:text"`

	Status          ProductStatus `json:"status" gorm:"type:varchar(20);default:'draft';index"`
	RejectionReason *string       `json:"rejection_reason,omitempty" gorm:"type:text"`

	// Relationships
	Vendor VendorAccount `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
}

// productTransitionSources maps a target status to the statuses a product may
// legally move from. draft is entered only at creation and archived is never
// exited.
var productTransitionSources = map[ProductStatus][]ProductStatus{
	ProductStatusPendingReview: {ProductStatusDraft, ProductStatusRejected, ProductStatusUnpublished},
	ProductStatusApproved:      {ProductStatusPendingReview},
	ProductStatusRejected:      {ProductStatusPendingReview},
	ProductStatusUnpublished:   {ProductStatusApproved},
	ProductStatusArchived:      {ProductStatusApproved},
}

// ProductTransitionSources returns the legal source statuses for a transition
// into target. The returned slice is shared and must not be mutated.
func ProductTransitionSources(target ProductStatus) []ProductStatus {
	return productTransitionSources[target]
}

func (s ProductStatus) CanTransitionTo(target ProductStatus) bool {
	for _, from := range productTransitionSources[target] {
		if from == s {
			return true
		}
	}
	return false
}

// Editable reports whether a vendor may change catalog fields in this status.
func (s ProductStatus) Editable() bool {
	return s == ProductStatusDraft || s == ProductStatusRejected
}
