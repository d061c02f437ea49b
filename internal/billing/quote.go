package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Beneficiary is a person or company a booking is billed to.
type Beneficiary struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	Reference   string    `json:"reference,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	Street      string    `json:"street,omitempty"`
	PostalCode  string    `json:"postal_code,omitempty"`
	Locality    string    `json:"locality,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
}

// BookingSnapshot is everything the engine needs about a booking. It is assembled by the
// persistence layer beforehand; the engine never loads anything by itself.
type BookingSnapshot struct {
	ID            uuid.UUID
	Title         string
	Location      string
	StartDate     time.Time
	EndDate       time.Time
	Currency      string
	Beneficiaries []Beneficiary
	Materials     []MaterialLine
	Catalog       Catalog

	// DegressiveRate overrides the default curve of the settings when set.
	DegressiveRate *DegressiveRateCurve
	// Taxes are the taxes frozen on the booking. Nil means the settings taxes apply.
	Taxes []FlatTax
}

type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type Company struct {
	Name      string `json:"name"`
	Street    string `json:"street"`
	ZipCode   string `json:"zipCode"`
	Locality  string `json:"locality"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	VATNumber string `json:"vatNumber"`
}

// Settings is the pricing configuration handed to every quote.
type Settings struct {
	Currency       Currency
	Locale         string
	Company        Company
	DegressiveRate *DegressiveRateCurve
	Taxes          []FlatTax
}

// Totals holds every amount derived from a quote. Amounts are rounded to two decimals.
type Totals struct {
	DaysCount               int
	DailyAmount             decimal.Decimal
	DiscountableDailyAmount decimal.Decimal
	ReplacementAmount       decimal.Decimal
	DegressiveRate          decimal.Decimal
	DiscountRate            decimal.Decimal
	DiscountAmount          decimal.Decimal
	VatRate                 decimal.Decimal
	VatAmount               decimal.Decimal
	DailyVatAmount          decimal.Decimal
	TotalExclTax            decimal.Decimal
	TotalInclTax            decimal.Decimal
	TaxLines                []TaxLine
}

// Quote computes the billing of one booking. Totals are computed on first access and kept
// until the discount rate changes. A Quote is not safe for concurrent use.
type Quote struct {
	snapshot     BookingSnapshot
	settings     Settings
	lines        *Lines
	curve        *DegressiveRateCurve
	taxes        []FlatTax
	daysCount    int
	discountRate decimal.Decimal
	totals       *Totals
}

// NewQuote validates the snapshot and prepares a quote with a zero discount.
func NewQuote(snapshot BookingSnapshot, settings Settings) (*Quote, error) {
	if len(snapshot.Materials) == 0 || len(snapshot.Beneficiaries) == 0 {
		return nil, ErrIncompleteBookingData
	}
	if snapshot.EndDate.Before(snapshot.StartDate) {
		return nil, fmt.Errorf("%w: booking ends before it starts", ErrInvalidArgument)
	}
	for _, line := range snapshot.Materials {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: material %q has quantity %d", ErrInvalidArgument, line.Reference, line.Quantity)
		}
		if line.RentalPrice.IsNegative() || line.ReplacementPrice.IsNegative() {
			return nil, fmt.Errorf("%w: material %q has a negative price", ErrInvalidArgument, line.Reference)
		}
	}

	if strings.TrimSpace(snapshot.Currency) == "" {
		snapshot.Currency = settings.Currency.Code
	}
	if strings.TrimSpace(snapshot.Currency) == "" {
		return nil, fmt.Errorf("%w: no currency for booking", ErrInvalidArgument)
	}

	curve := snapshot.DegressiveRate
	if curve == nil {
		curve = settings.DegressiveRate
	}
	if curve == nil {
		curve = NonDegressiveCurve()
	}

	taxes := snapshot.Taxes
	if taxes == nil {
		taxes = settings.Taxes
	}

	return &Quote{
		snapshot:     snapshot,
		settings:     settings,
		lines:        NewLines(snapshot.Materials, snapshot.Catalog),
		curve:        curve,
		taxes:        taxes,
		daysCount:    inclusiveDays(snapshot.StartDate, snapshot.EndDate),
		discountRate: decimal.Zero,
	}, nil
}

// inclusiveDays counts calendar days from start to end, both included.
func inclusiveDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// SetDiscountRate changes the discount percentage applied to discountable lines.
func (q *Quote) SetDiscountRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return fmt.Errorf("%w: %s is outside 0-100", ErrInvalidDiscountRate, rate.String())
	}
	q.discountRate = rate
	q.totals = nil
	return nil
}

// Snapshot returns the booking the quote was built from.
func (q *Quote) Snapshot() BookingSnapshot { return q.snapshot }

// Lines exposes the line aggregator and its grouping views.
func (q *Quote) Lines() *Lines { return q.lines }

// Currency is the booking currency.
func (q *Quote) Currency() string { return q.snapshot.Currency }

// Taxes returns the flat taxes applied to the quote.
func (q *Quote) Taxes() []FlatTax {
	out := make([]FlatTax, len(q.taxes))
	copy(out, q.taxes)
	return out
}

// Totals computes, or returns the memoized, totals of the quote.
func (q *Quote) Totals() Totals {
	if q.totals != nil {
		return *q.totals
	}

	daily := q.lines.DailyAmount()
	discountable := q.lines.DiscountableDailyAmount()

	// daysCount is validated at construction, the curve cannot fail on it.
	degressive, _ := q.curve.ComputeForDays(q.daysCount)

	discount := discountable.Mul(degressive).Mul(q.discountRate).Div(hundred).Round(2)
	exclTax := daily.Mul(degressive).Sub(discount).Round(2)
	vat, taxLines := ApplyTaxes(q.taxes, exclTax)
	dailyVat, _ := ApplyTaxes(q.taxes, daily)

	q.totals = &Totals{
		DaysCount:               q.daysCount,
		DailyAmount:             daily.Round(2),
		DiscountableDailyAmount: discountable.Round(2),
		ReplacementAmount:       q.lines.ReplacementAmount().Round(2),
		DegressiveRate:          degressive,
		DiscountRate:            q.discountRate,
		DiscountAmount:          discount,
		VatRate:                 TotalRate(q.taxes),
		VatAmount:               vat,
		DailyVatAmount:          dailyVat,
		TotalExclTax:            exclTax,
		TotalInclTax:            exclTax.Add(vat),
		TaxLines:                taxLines,
	}
	return *q.totals
}

func (q *Quote) DaysCount() int                           { return q.daysCount }
func (q *Quote) DailyAmount() decimal.Decimal             { return q.Totals().DailyAmount }
func (q *Quote) DiscountableDailyAmount() decimal.Decimal { return q.Totals().DiscountableDailyAmount }
func (q *Quote) ReplacementAmount() decimal.Decimal       { return q.Totals().ReplacementAmount }
func (q *Quote) DegressiveRate() decimal.Decimal          { return q.Totals().DegressiveRate }
func (q *Quote) DiscountRate() decimal.Decimal            { return q.discountRate }
func (q *Quote) DiscountAmount() decimal.Decimal          { return q.Totals().DiscountAmount }
func (q *Quote) VatRate() decimal.Decimal                 { return q.Totals().VatRate }
func (q *Quote) VatAmount() decimal.Decimal               { return q.Totals().VatAmount }
func (q *Quote) TotalExclTax() decimal.Decimal            { return q.Totals().TotalExclTax }
func (q *Quote) TotalInclTax() decimal.Decimal            { return q.Totals().TotalInclTax }
