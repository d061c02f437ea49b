package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event is a rental booking. Prices and taxes are frozen on it when materials are booked,
// and only change through an explicit resynchronization.
type Event struct {
	ID               uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title            string             `gorm:"type:varchar(191);not null" json:"title"`
	Location         string             `gorm:"type:varchar(191)" json:"location"`
	StartDate        time.Time          `gorm:"not null;index" json:"start_date"`
	EndDate          time.Time          `gorm:"not null;index" json:"end_date"`
	Currency         string             `gorm:"type:varchar(3);not null" json:"currency"`
	DiscountRate     decimal.Decimal    `gorm:"type:decimal(7,4);not null;default:0" json:"discount_rate"`
	DegressiveRateID *uuid.UUID         `gorm:"type:uuid;index" json:"degressive_rate_id"`
	DegressiveRate   *DegressiveRate    `gorm:"foreignKey:DegressiveRateID" json:"degressive_rate,omitempty"`
	TaxID            *uuid.UUID         `gorm:"type:uuid;index" json:"tax_id"`
	Taxes            string             `gorm:"type:jsonb" json:"taxes"` // Frozen flat taxes, null means the default tax applies
	Beneficiaries    []EventBeneficiary `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"beneficiaries"`
	Materials        []EventMaterial    `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"materials"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// EventBeneficiary orders the beneficiaries of an event; the first one is billed.
type EventBeneficiary struct {
	EventID       uuid.UUID    `gorm:"type:uuid;primaryKey" json:"event_id"`
	BeneficiaryID uuid.UUID    `gorm:"type:uuid;primaryKey" json:"beneficiary_id"`
	Beneficiary   *Beneficiary `gorm:"foreignKey:BeneficiaryID" json:"beneficiary,omitempty"`
	Position      int          `gorm:"not null;default:0" json:"position"`
}

// EventMaterial is a booked material with the prices frozen at booking time.
type EventMaterial struct {
	ID               uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EventID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_event_material" json:"event_id"`
	MaterialID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_event_material" json:"material_id"`
	Material         *Material       `gorm:"foreignKey:MaterialID" json:"material,omitempty"`
	Quantity         int             `gorm:"not null" json:"quantity"`
	RentalPrice      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"rental_price"`
	ReplacementPrice decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"replacement_price"`
	Position         int             `gorm:"not null;default:0" json:"position"`
	Units            []MaterialUnit  `gorm:"many2many:event_material_units" json:"units,omitempty"`
}

type Beneficiary struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName    string    `gorm:"type:varchar(191);not null" json:"full_name"`
	Reference   string    `gorm:"type:varchar(96);index" json:"reference"`
	CompanyName string    `gorm:"type:varchar(191)" json:"company_name"`
	Street      string    `gorm:"type:varchar(191)" json:"street"`
	PostalCode  string    `gorm:"type:varchar(16)" json:"postal_code"`
	Locality    string    `gorm:"type:varchar(191)" json:"locality"`
	Email       string    `gorm:"type:varchar(191)" json:"email"`
	Phone       string    `gorm:"type:varchar(32)" json:"phone"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
