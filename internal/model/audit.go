package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreateBill           = "CREATE_BILL"
	ActionDeleteBill           = "DELETE_BILL"
	ActionCreateEstimate       = "CREATE_ESTIMATE"
	ActionDeleteEstimate       = "DELETE_ESTIMATE"
	ActionCreateDegressiveRate = "CREATE_DEGRESSIVE_RATE"
	ActionUpdateDegressiveRate = "UPDATE_DEGRESSIVE_RATE"
	ActionDeleteDegressiveRate = "DELETE_DEGRESSIVE_RATE"
	ActionCreateTax            = "CREATE_TAX"
	ActionUpdateTax            = "UPDATE_TAX"
	ActionDeleteTax            = "DELETE_TAX"
	ActionResyncEventTaxes     = "RESYNC_EVENT_TAXES"
	ActionResyncEventPrices    = "RESYNC_EVENT_PRICES"
)

// AuditLog tracks who changed billing data and when
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Null for anonymous callers
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"` // Bill number, tax name...
	Details    string     `gorm:"type:jsonb" json:"details"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
