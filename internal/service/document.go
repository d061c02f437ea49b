package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"rentalbilling/internal/billing"
	"rentalbilling/internal/model"
)

// --- DTOs ---

type CreateDocumentRequest struct {
	DiscountRate *string `json:"discount_rate" example:"33.33"`
}

func (r CreateDocumentRequest) discount() string {
	if r.DiscountRate == nil {
		return ""
	}
	return *r.DiscountRate
}

// DocumentResponse is the frozen view of a bill or an estimate.
type DocumentResponse struct {
	ID                string          `json:"id"`
	Number            string          `json:"number,omitempty"`
	Date              time.Time       `json:"date"`
	EventID           string          `json:"event_id"`
	BeneficiaryID     string          `json:"beneficiary_id"`
	Materials         json.RawMessage `json:"materials" swaggertype:"array,object"`
	Taxes             json.RawMessage `json:"taxes" swaggertype:"array,object"`
	DegressiveRate    string          `json:"degressive_rate"`
	DiscountRate      string          `json:"discount_rate"`
	VatRate           string          `json:"vat_rate"`
	DueAmount         string          `json:"due_amount"`
	ReplacementAmount string          `json:"replacement_amount"`
	Currency          string          `json:"currency"`
	UserID            *string         `json:"user_id"`
	CreatedAt         time.Time       `json:"created_at"`
}

// PDFRenderer turns quote data into a printable document.
type PDFRenderer interface {
	Render(data *billing.TemplateData) ([]byte, error)
}

// frozenFields holds the columns bills and estimates share.
type frozenFields struct {
	materials         string
	taxes             string
	degressiveRate    decimal.Decimal
	discountRate      decimal.Decimal
	vatRate           decimal.Decimal
	dueAmount         decimal.Decimal
	replacementAmount decimal.Decimal
}

func freezeRecord(record billing.ModelRecord) (frozenFields, error) {
	materials, err := json.Marshal(record.Materials)
	if err != nil {
		return frozenFields{}, fmt.Errorf("failed to encode materials: %w", err)
	}
	taxes := record.Taxes
	if taxes == nil {
		taxes = []billing.FlatTax{}
	}
	taxesJSON, err := json.Marshal(taxes)
	if err != nil {
		return frozenFields{}, fmt.Errorf("failed to encode taxes: %w", err)
	}

	f := frozenFields{materials: string(materials), taxes: string(taxesJSON)}
	for _, field := range []struct {
		raw string
		dst *decimal.Decimal
	}{
		{record.DegressiveRate, &f.degressiveRate},
		{record.DiscountRate, &f.discountRate},
		{record.VatRate, &f.vatRate},
		{record.DueAmount, &f.dueAmount},
		{record.ReplacementAmount, &f.replacementAmount},
	} {
		v, err := decimal.NewFromString(field.raw)
		if err != nil {
			return frozenFields{}, fmt.Errorf("invalid amount %q: %w", field.raw, err)
		}
		*field.dst = v
	}
	return f, nil
}

func rawJSON(s string) json.RawMessage {
	if s == "" {
		return json.RawMessage("[]")
	}
	return json.RawMessage(s)
}

func toBillResponse(b model.Bill) DocumentResponse {
	return DocumentResponse{
		ID:                b.ID.String(),
		Number:            b.Number,
		Date:              b.Date,
		EventID:           b.EventID.String(),
		BeneficiaryID:     b.BeneficiaryID.String(),
		Materials:         rawJSON(b.Materials),
		Taxes:             rawJSON(b.Taxes),
		DegressiveRate:    b.DegressiveRate.StringFixed(2),
		DiscountRate:      b.DiscountRate.StringFixed(4),
		VatRate:           b.VatRate.StringFixed(2),
		DueAmount:         b.DueAmount.StringFixed(2),
		ReplacementAmount: b.ReplacementAmount.StringFixed(2),
		Currency:          b.Currency,
		UserID:            uuidString(b.UserID),
		CreatedAt:         b.CreatedAt,
	}
}

func toEstimateResponse(e model.Estimate) DocumentResponse {
	return DocumentResponse{
		ID:                e.ID.String(),
		Date:              e.Date,
		EventID:           e.EventID.String(),
		BeneficiaryID:     e.BeneficiaryID.String(),
		Materials:         rawJSON(e.Materials),
		Taxes:             rawJSON(e.Taxes),
		DegressiveRate:    e.DegressiveRate.StringFixed(2),
		DiscountRate:      e.DiscountRate.StringFixed(4),
		VatRate:           e.VatRate.StringFixed(2),
		DueAmount:         e.DueAmount.StringFixed(2),
		ReplacementAmount: e.ReplacementAmount.StringFixed(2),
		Currency:          e.Currency,
		UserID:            uuidString(e.UserID),
		CreatedAt:         e.CreatedAt,
	}
}
