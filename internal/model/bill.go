package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bill is an immutable, numbered snapshot of an event quote. Only deletion is allowed.
type Bill struct {
	ID                uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Number            string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"number"` // YYYY-NNNNN
	Year              int             `gorm:"not null;uniqueIndex:idx_bill_year_sequence" json:"year"`
	Sequence          int             `gorm:"not null;uniqueIndex:idx_bill_year_sequence" json:"sequence"`
	Date              time.Time       `gorm:"not null;index" json:"date"`
	EventID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"event_id"`
	BeneficiaryID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"beneficiary_id"`
	Materials         string          `gorm:"type:jsonb;not null" json:"materials"`
	Taxes             string          `gorm:"type:jsonb" json:"taxes"`
	DegressiveRate    decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"degressive_rate"`
	DiscountRate      decimal.Decimal `gorm:"type:decimal(7,4);not null;default:0" json:"discount_rate"`
	VatRate           decimal.Decimal `gorm:"type:decimal(7,2);not null;default:0" json:"vat_rate"`
	DueAmount         decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"due_amount"`
	ReplacementAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"replacement_amount"`
	Currency          string          `gorm:"type:varchar(3);not null" json:"currency"`
	UserID            *uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	CreatedAt         time.Time       `json:"created_at"`
}

// Estimate has the same frozen shape as a bill, without a number.
type Estimate struct {
	ID                uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date              time.Time       `gorm:"not null;index" json:"date"`
	EventID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"event_id"`
	BeneficiaryID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"beneficiary_id"`
	Materials         string          `gorm:"type:jsonb;not null" json:"materials"`
	Taxes             string          `gorm:"type:jsonb" json:"taxes"`
	DegressiveRate    decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"degressive_rate"`
	DiscountRate      decimal.Decimal `gorm:"type:decimal(7,4);not null;default:0" json:"discount_rate"`
	VatRate           decimal.Decimal `gorm:"type:decimal(7,2);not null;default:0" json:"vat_rate"`
	DueAmount         decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"due_amount"`
	ReplacementAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"replacement_amount"`
	Currency          string          `gorm:"type:varchar(3);not null" json:"currency"`
	UserID            *uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	CreatedAt         time.Time       `json:"created_at"`
}

// BillSequence holds the last bill sequence handed out for a year.
type BillSequence struct {
	Year      int       `gorm:"primaryKey;autoIncrement:false" json:"year"`
	LastValue int       `gorm:"not null;default:0" json:"last_value"`
	UpdatedAt time.Time `json:"updated_at"`
}
