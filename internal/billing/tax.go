package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FlatTax is a single rate- or value-based tax leaf, as frozen on a booking.
type FlatTax struct {
	Name   string          `json:"name"`
	IsRate bool            `json:"is_rate"`
	Value  decimal.Decimal `json:"value"`
}

// TaxComponent is one leaf of a tax group.
type TaxComponent struct {
	Name   string          `json:"name"`
	IsRate bool            `json:"is_rate"`
	Value  decimal.Decimal `json:"value"`
}

// Tax is either a leaf (IsRate/Value set) or a group whose Components carry the values.
type Tax struct {
	Name       string          `json:"name"`
	IsGroup    bool            `json:"is_group"`
	IsRate     bool            `json:"is_rate"`
	Value      decimal.Decimal `json:"value"`
	Components []TaxComponent  `json:"components,omitempty"`
}

// NewTax builds and validates a leaf tax.
func NewTax(name string, isRate bool, value decimal.Decimal) (Tax, error) {
	t := Tax{Name: name, IsRate: isRate, Value: value}
	if err := t.Validate(); err != nil {
		return Tax{}, err
	}
	return t, nil
}

// NewTaxGroup builds and validates a tax group.
func NewTaxGroup(name string, components []TaxComponent) (Tax, error) {
	t := Tax{Name: name, IsGroup: true, Components: components}
	if err := t.Validate(); err != nil {
		return Tax{}, err
	}
	return t, nil
}

// Validate checks names and value ranges of the tax and of its components.
func (t Tax) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTaxValue)
	}
	if !t.IsGroup {
		return validateTaxValue(t.Name, t.IsRate, t.Value)
	}
	if len(t.Components) == 0 {
		return fmt.Errorf("%w: group %q has no component", ErrInvalidTaxValue, t.Name)
	}
	for _, c := range t.Components {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: component of %q has no name", ErrInvalidTaxValue, t.Name)
		}
		if err := validateTaxValue(c.Name, c.IsRate, c.Value); err != nil {
			return err
		}
	}
	return nil
}

func validateTaxValue(name string, isRate bool, value decimal.Decimal) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: %q cannot be negative", ErrInvalidTaxValue, name)
	}
	if isRate && value.GreaterThan(hundred) {
		return fmt.Errorf("%w: rate of %q cannot exceed 100", ErrInvalidTaxValue, name)
	}
	return nil
}

// AsFlatArray flattens the tax into its leaves, in declaration order.
func (t Tax) AsFlatArray() []FlatTax {
	if !t.IsGroup {
		return []FlatTax{{Name: t.Name, IsRate: t.IsRate, Value: t.Value}}
	}
	out := make([]FlatTax, 0, len(t.Components))
	for _, c := range t.Components {
		out = append(out, FlatTax{Name: c.Name, IsRate: c.IsRate, Value: c.Value})
	}
	return out
}

// Resolve flattens a tax for a booking. When the booking currency changed, value-based
// leaves cannot be re-derived and the whole resolution fails.
func Resolve(t Tax, currencyChanged bool) ([]FlatTax, error) {
	flat := t.AsFlatArray()
	if !currencyChanged {
		return flat, nil
	}
	for _, leaf := range flat {
		if !leaf.IsRate {
			return nil, fmt.Errorf("%w: %q is an absolute amount", ErrInvalidCurrencyResynchronization, leaf.Name)
		}
	}
	return flat, nil
}

// GuardResync tells whether a field can be re-derived from global configuration.
// Rates are currency-agnostic; absolute amounts are not.
func GuardResync(isRate bool, bookingCurrency, globalCurrency string) error {
	if isRate || CurrencyMatches(bookingCurrency, globalCurrency) {
		return nil
	}
	return fmt.Errorf("%w: booking is in %s, configuration is in %s",
		ErrInvalidCurrencyResynchronization, bookingCurrency, globalCurrency)
}

// CurrencyMatches compares ISO currency codes case-insensitively.
func CurrencyMatches(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// TaxLine is the amount one tax leaf adds to a taxable base.
type TaxLine struct {
	Name   string          `json:"name"`
	IsRate bool            `json:"is_rate"`
	Value  decimal.Decimal `json:"value"`
	Amount decimal.Decimal `json:"amount"`
}

// ApplyTaxes computes every leaf on the base. Rate amounts are rounded to two decimals
// before being summed.
func ApplyTaxes(taxes []FlatTax, base decimal.Decimal) (decimal.Decimal, []TaxLine) {
	total := decimal.Zero
	lines := make([]TaxLine, 0, len(taxes))
	for _, tax := range taxes {
		amount := tax.Value
		if tax.IsRate {
			amount = base.Mul(tax.Value).Div(hundred).Round(2)
		}
		total = total.Add(amount)
		lines = append(lines, TaxLine{Name: tax.Name, IsRate: tax.IsRate, Value: tax.Value, Amount: amount})
	}
	return total, lines
}

// TotalRate sums the rate-based leaves.
func TotalRate(taxes []FlatTax) decimal.Decimal {
	total := decimal.Zero
	for _, tax := range taxes {
		if tax.IsRate {
			total = total.Add(tax.Value)
		}
	}
	return total
}
