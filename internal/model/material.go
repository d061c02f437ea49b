package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Material is a rentable item of the catalog with its current prices.
type Material struct {
	ID               uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Reference        string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"reference"`
	Name             string          `gorm:"type:varchar(191);not null" json:"name"`
	ParkID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"park_id"`
	CategoryID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	SubCategoryID    *uuid.UUID      `gorm:"type:uuid;index" json:"sub_category_id"`
	RentalPrice      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"rental_price"`
	ReplacementPrice decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"replacement_price"`
	Stock            int             `gorm:"not null;default:0" json:"stock"`
	IsDiscountable   bool            `gorm:"not null;default:true" json:"is_discountable"`
	IsHiddenOnBill   bool            `gorm:"not null;default:false" json:"is_hidden_on_bill"`
	IsUnitTracked    bool            `gorm:"not null;default:false" json:"is_unit_tracked"`
	Attributes       string          `gorm:"type:jsonb" json:"attributes"` // [{name, value, unit}]
	Units            []MaterialUnit  `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE" json:"units,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// MaterialUnit is one serialized unit of a unit-tracked material.
type MaterialUnit struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MaterialID uuid.UUID `gorm:"type:uuid;not null;index" json:"material_id"`
	ParkID     uuid.UUID `gorm:"type:uuid;not null;index" json:"park_id"`
	Name       string    `gorm:"type:varchar(64);not null" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}
