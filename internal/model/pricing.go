package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DegressiveRate is a named duration curve. Exactly one curve should be the default.
type DegressiveRate struct {
	ID        uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string               `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	IsDefault bool                 `gorm:"not null;default:false;index" json:"is_default"`
	Tiers     []DegressiveRateTier `gorm:"foreignKey:DegressiveRateID;constraint:OnDelete:CASCADE" json:"tiers"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

type DegressiveRateTier struct {
	ID               uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DegressiveRateID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_rate_from_day" json:"degressive_rate_id"`
	FromDay          int             `gorm:"not null;uniqueIndex:idx_rate_from_day" json:"from_day"`
	IsRate           bool            `gorm:"not null" json:"is_rate"`
	Value            decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"value"`
}

// Tax is a leaf (IsRate and Value set) or a group of components.
type Tax struct {
	ID         uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string              `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	IsGroup    bool                `gorm:"not null;default:false" json:"is_group"`
	IsRate     *bool               `json:"is_rate"`
	Value      decimal.NullDecimal `gorm:"type:decimal(10,4)" json:"value"`
	IsDefault  bool                `gorm:"not null;default:false;index" json:"is_default"`
	Components []TaxComponent      `gorm:"foreignKey:TaxID;constraint:OnDelete:CASCADE" json:"components"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type TaxComponent struct {
	ID       uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TaxID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"tax_id"`
	Name     string          `gorm:"type:varchar(64);not null" json:"name"`
	IsRate   bool            `gorm:"not null" json:"is_rate"`
	Value    decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"value"`
	Position int             `gorm:"not null;default:0" json:"position"`
}
