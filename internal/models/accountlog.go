// internal/models/accountlog.go
package models

import (
	"github.com/google/uuid"
)

// AccountLog is the append-only audit trail behind the admin "Recent Account
// Logs" view. Rows are created once and never updated or deleted.
type AccountLog struct {
	BaseModel
	ActorID    *uuid.UUID `json:"actor_id" gorm:"type:uuid;index"`
	ActorRole  string     `json:"actor_role" gorm:"size:20;index"`
	Action     string     `json:"action" gorm:"size:100;not null;index"`
	EntityType string     `json:"entity_type" gorm:"size:50;not null;index"`
	EntityID   *uuid.UUID `json:"entity_id" gorm:"type:uuid;index"`
	Remarks    string     `json:"remarks" gorm:"type:text"`
	Detail     JSONB      `json:"detail" gorm:"type:jsonb"`
	IPAddress  string     `json:"ip_address" gorm:"size:45"`
}
