// internal/models/address.go
package models

import (
	"github.com/google/uuid"
)

type Address struct {
	BaseModel
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Label      string    `json:"label" gorm:"size:50"`
	FullName   string    `json:"full_name" gorm:"size:100;not null"`
	Phone      string    `json:"phone" gorm:"size:20;not null"`
	Line1      string    `json:"line1" gorm:"size:255;not null"`
	Line2      string    `json:"line2" gorm:"size:255"`
	City       string    `json:"city" gorm:"size:100;not null"`
	State      string    `json:"state" gorm:"size:100"`
	PostalCode string    `json:"postal_code" gorm:"size:12;not null"`
	IsDefault  bool      `json:"is_default" gorm:"default:false"`
}
