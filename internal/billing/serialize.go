package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordMaterial is a material line frozen on a bill or an estimate.
type RecordMaterial struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Reference        string    `json:"reference"`
	ParkID           uuid.UUID `json:"park_id"`
	CategoryID       uuid.UUID `json:"category_id"`
	SubCategoryID    uuid.UUID `json:"sub_category_id"`
	RentalPrice      string    `json:"rental_price"`
	ReplacementPrice string    `json:"replacement_price"`
	IsDiscountable   bool      `json:"is_discountable"`
	IsHiddenOnBill   bool      `json:"is_hidden_on_bill"`
	Quantity         int       `json:"quantity"`
}

// ModelRecord is the flat shape persisted for bills and estimates. Decimal fields are
// fixed two-decimal strings.
type ModelRecord struct {
	Number            *string          `json:"number,omitempty"`
	Date              time.Time        `json:"date"`
	EventID           uuid.UUID        `json:"event_id"`
	BeneficiaryID     uuid.UUID        `json:"beneficiary_id"`
	Materials         []RecordMaterial `json:"materials"`
	Taxes             []FlatTax        `json:"taxes"`
	DegressiveRate    string           `json:"degressive_rate"`
	DiscountRate      string           `json:"discount_rate"`
	VatRate           string           `json:"vat_rate"`
	DueAmount         string           `json:"due_amount"`
	ReplacementAmount string           `json:"replacement_amount"`
	Currency          string           `json:"currency"`
	UserID            *uuid.UUID       `json:"user_id"`
}

// ToModelRecord renders the quote for persistence. The number is assigned by the caller.
func (q *Quote) ToModelRecord(date time.Time, userID *uuid.UUID) ModelRecord {
	totals := q.Totals()

	materials := make([]RecordMaterial, 0, len(q.snapshot.Materials))
	for _, line := range q.lines.All() {
		materials = append(materials, RecordMaterial{
			ID:               line.ID,
			Name:             line.Name,
			Reference:        line.Reference,
			ParkID:           line.ParkID,
			CategoryID:       line.CategoryID,
			SubCategoryID:    line.SubCategoryID,
			RentalPrice:      line.RentalPrice.StringFixed(2),
			ReplacementPrice: line.ReplacementPrice.StringFixed(2),
			IsDiscountable:   line.IsDiscountable,
			IsHiddenOnBill:   line.IsHiddenOnBill,
			Quantity:         line.Quantity,
		})
	}

	return ModelRecord{
		Date:              date,
		EventID:           q.snapshot.ID,
		BeneficiaryID:     q.snapshot.Beneficiaries[0].ID,
		Materials:         materials,
		Taxes:             q.Taxes(),
		DegressiveRate:    totals.DegressiveRate.StringFixed(2),
		DiscountRate:      totals.DiscountRate.StringFixed(4),
		VatRate:           totals.VatRate.StringFixed(2),
		DueAmount:         totals.TotalInclTax.StringFixed(2),
		ReplacementAmount: totals.ReplacementAmount.StringFixed(2),
		Currency:          q.snapshot.Currency,
		UserID:            userID,
	}
}

type TemplateEvent struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location,omitempty"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type TemplateCurrency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// TemplateData is the nested structure handed to the document renderer.
type TemplateData struct {
	Number        string        `json:"number,omitempty"`
	Date          time.Time     `json:"date"`
	Event         TemplateEvent `json:"event"`
	DaysCount     int           `json:"daysCount"`
	Beneficiary   Beneficiary   `json:"beneficiary"`
	Beneficiaries []Beneficiary `json:"beneficiaries"`

	Company  Company          `json:"company"`
	Locale   string           `json:"locale"`
	Currency TemplateCurrency `json:"currency"`

	DailyAmount             decimal.Decimal `json:"dailyAmount"`
	DiscountableDailyAmount decimal.Decimal `json:"discountableDailyAmount"`
	DegressiveRate          decimal.Decimal `json:"degressiveRate"`
	DiscountRate            decimal.Decimal `json:"discountRate"`
	DiscountAmount          decimal.Decimal `json:"discountAmount"`
	VatRate                 decimal.Decimal `json:"vatRate"`
	VatAmount               decimal.Decimal `json:"vatAmount"`
	DailyVatAmount          decimal.Decimal `json:"dailyVatAmount"`
	TotalExclTax            decimal.Decimal `json:"totalExclTaxes"`
	TotalInclTax            decimal.Decimal `json:"totalInclTaxes"`
	ReplacementAmount       decimal.Decimal `json:"totalReplacement"`
	Taxes                   []TaxLine       `json:"taxes"`

	Categories             []CategoryTotal              `json:"categoriesTotals"`
	Materials              []PresentedMaterial          `json:"materials"`
	MaterialsByCategory    []MaterialGroup              `json:"materialsByCategories"`
	MaterialsBySubCategory []SubCategoryGroup           `json:"materialsBySubCategories"`
	MaterialsByPark        []MaterialGroup              `json:"materialsByParks"`
	MaterialsFlat          map[string]PresentedMaterial `json:"materialsFlat"`
}

// ToTemplateData renders the quote for documents.
func (q *Quote) ToTemplateData(date time.Time) TemplateData {
	totals := q.Totals()
	currency := TemplateCurrency{Code: q.snapshot.Currency}
	if CurrencyMatches(q.snapshot.Currency, q.settings.Currency.Code) {
		currency.Symbol = q.settings.Currency.Symbol
		currency.Name = q.settings.Currency.Name
	}

	beneficiaries := make([]Beneficiary, len(q.snapshot.Beneficiaries))
	copy(beneficiaries, q.snapshot.Beneficiaries)

	return TemplateData{
		Date: date,
		Event: TemplateEvent{
			ID:        q.snapshot.ID,
			Title:     q.snapshot.Title,
			Location:  q.snapshot.Location,
			StartDate: q.snapshot.StartDate,
			EndDate:   q.snapshot.EndDate,
		},
		DaysCount:     totals.DaysCount,
		Beneficiary:   beneficiaries[0],
		Beneficiaries: beneficiaries,

		Company:  q.settings.Company,
		Locale:   q.settings.Locale,
		Currency: currency,

		DailyAmount:             totals.DailyAmount,
		DiscountableDailyAmount: totals.DiscountableDailyAmount,
		DegressiveRate:          totals.DegressiveRate,
		DiscountRate:            totals.DiscountRate,
		DiscountAmount:          totals.DiscountAmount,
		VatRate:                 totals.VatRate,
		VatAmount:               totals.VatAmount,
		DailyVatAmount:          totals.DailyVatAmount,
		TotalExclTax:            totals.TotalExclTax,
		TotalInclTax:            totals.TotalInclTax,
		ReplacementAmount:       totals.ReplacementAmount,
		Taxes:                   totals.TaxLines,

		Categories:             q.lines.CategoriesTotals(),
		Materials:              q.lines.Presented(),
		MaterialsByCategory:    q.lines.ByCategory(),
		MaterialsBySubCategory: q.lines.BySubCategory(),
		MaterialsByPark:        q.lines.ByPark(),
		MaterialsFlat:          q.lines.Flat(),
	}
}
