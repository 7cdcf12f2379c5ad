// internal/models/vehicle.go
package models

import (
	"github.com/google/uuid"
)

// Vehicle is one entry in a customer's garage, used to filter the catalog by
// fitment.
type Vehicle struct {
	BaseModel
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Make        string    `json:"make" gorm:"size:64;not null"`
	Model       string    `json:"model" gorm:"size:64;not null"`
	Variant     string    `json:"variant" gorm:"size:64"`
	Year        int       `json:"year"`
	PlateNumber string    `json:"plate_number" gorm:"size:32"`
	IsDefault   bool      `json:"is_default" gorm:"default:false"`
}
