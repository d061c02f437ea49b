package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxValidate(t *testing.T) {
	testCases := []struct {
		name    string
		tax     Tax
		wantErr bool
	}{
		{name: "rate", tax: Tax{Name: "VAT", IsRate: true, Value: dec("20")}},
		{name: "value", tax: Tax{Name: "Eco fee", Value: dec("1.5")}},
		{name: "group", tax: Tax{Name: "QC", IsGroup: true, Components: []TaxComponent{
			{Name: "GST", IsRate: true, Value: dec("5")},
			{Name: "QST", IsRate: true, Value: dec("9.975")},
		}}},
		{name: "missing_name", tax: Tax{Name: "  ", IsRate: true, Value: dec("20")}, wantErr: true},
		{name: "negative_value", tax: Tax{Name: "Eco fee", Value: dec("-1")}, wantErr: true},
		{name: "rate_over_hundred", tax: Tax{Name: "VAT", IsRate: true, Value: dec("120")}, wantErr: true},
		{name: "empty_group", tax: Tax{Name: "QC", IsGroup: true}, wantErr: true},
		{name: "invalid_component", tax: Tax{Name: "QC", IsGroup: true, Components: []TaxComponent{
			{Name: "GST", IsRate: true, Value: dec("101")},
		}}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tax.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTaxValue)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewTaxGroupFlattensInOrder(t *testing.T) {
	group, err := NewTaxGroup("QC", []TaxComponent{
		{Name: "GST", IsRate: true, Value: dec("5")},
		{Name: "Eco fee", IsRate: false, Value: dec("2")},
	})
	require.NoError(t, err)

	flat := group.AsFlatArray()
	require.Len(t, flat, 2)
	assert.Equal(t, "GST", flat[0].Name)
	assert.Equal(t, "Eco fee", flat[1].Name)
	assert.False(t, flat[1].IsRate)
}

func TestResolve(t *testing.T) {
	rates, err := NewTaxGroup("QC", []TaxComponent{
		{Name: "GST", IsRate: true, Value: dec("5")},
		{Name: "QST", IsRate: true, Value: dec("9.975")},
	})
	require.NoError(t, err)
	mixed, err := NewTaxGroup("Mixed", []TaxComponent{
		{Name: "VAT", IsRate: true, Value: dec("20")},
		{Name: "Eco fee", Value: dec("2")},
	})
	require.NoError(t, err)

	flat, err := Resolve(rates, true)
	require.NoError(t, err)
	assert.Len(t, flat, 2)

	flat, err = Resolve(mixed, false)
	require.NoError(t, err)
	assert.Len(t, flat, 2)

	_, err = Resolve(mixed, true)
	assert.ErrorIs(t, err, ErrInvalidCurrencyResynchronization)
}

func TestGuardResync(t *testing.T) {
	assert.NoError(t, GuardResync(true, "USD", "EUR"))
	assert.NoError(t, GuardResync(false, "eur", "EUR"))
	assert.ErrorIs(t, GuardResync(false, "USD", "EUR"), ErrInvalidCurrencyResynchronization)
}

func TestApplyTaxes(t *testing.T) {
	taxes := []FlatTax{
		{Name: "GST", IsRate: true, Value: dec("5")},
		{Name: "QST", IsRate: true, Value: dec("9.975")},
		{Name: "Eco fee", Value: dec("2")},
	}

	total, lines := ApplyTaxes(taxes, dec("100.01"))

	require.Len(t, lines, 3)
	assert.Equal(t, "5.00", lines[0].Amount.StringFixed(2))
	assert.Equal(t, "9.98", lines[1].Amount.StringFixed(2))
	assert.Equal(t, "2.00", lines[2].Amount.StringFixed(2))
	assert.Equal(t, "16.98", total.StringFixed(2))
	assert.Equal(t, "14.975", TotalRate(taxes).String())
}

func TestApplyTaxesWithoutTaxes(t *testing.T) {
	total, lines := ApplyTaxes(nil, dec("100"))
	assert.True(t, total.Equal(decimal.Zero))
	assert.Empty(t, lines)
}
