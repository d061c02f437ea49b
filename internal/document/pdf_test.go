package document

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentalbilling/internal/billing"
)

func testData() *billing.TemplateData {
	price := decimal.RequireFromString("300")
	return &billing.TemplateData{
		Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Event:       billing.TemplateEvent{ID: uuid.MustParse("00000000-0000-0000-0000-0000000000e1"), Title: "First event", Location: "Gap"},
		DaysCount:   2,
		Beneficiary: billing.Beneficiary{FullName: "Jean Fountain", Locality: "Gap"},
		Company:     billing.Company{Name: "Testing, Inc", Country: "France"},
		Currency:    billing.TemplateCurrency{Code: "EUR", Symbol: "€"},

		DailyAmount:    price,
		DegressiveRate: decimal.RequireFromString("1.75"),
		TotalExclTax:   decimal.RequireFromString("525"),
		VatAmount:      decimal.RequireFromString("105"),
		TotalInclTax:   decimal.RequireFromString("630"),
		Taxes: []billing.TaxLine{
			{Name: "VAT", IsRate: true, Value: decimal.NewFromInt(20), Amount: decimal.RequireFromString("105")},
		},
		MaterialsByCategory: []billing.MaterialGroup{{
			Name: "Sound",
			Materials: []billing.PresentedMaterial{{
				Reference: "CL3", Name: "Yamaha CL3 console", Quantity: 1, RentalPrice: price, Total: price,
				Units: []billing.PresentedUnit{{Name: "CL3 #1"}},
			}},
		}},
	}
}

func TestRender(t *testing.T) {
	testCases := []struct {
		name   string
		number string
	}{
		{name: "quote"},
		{name: "bill", number: "2024-00012"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := testData()
			data.Number = tc.number

			out, err := NewPDFRenderer().Render(data)

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
			assert.Greater(t, len(out), 1000)
		})
	}
}

func TestQRPayload(t *testing.T) {
	data := testData()
	assert.Equal(t, "event=00000000-0000-0000-0000-0000000000e1&total=630.00", QRPayload(data))

	data.Number = "2024-00012"
	assert.Equal(t, "bill=2024-00012&event=00000000-0000-0000-0000-0000000000e1&total=630.00", QRPayload(data))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "12.50 €", formatMoney(decimal.RequireFromString("12.5"), billing.TemplateCurrency{Code: "EUR", Symbol: "€"}))
	assert.Equal(t, "12.50 USD", formatMoney(decimal.RequireFromString("12.5"), billing.TemplateCurrency{Code: "USD"}))
}

func TestMaterialLabel(t *testing.T) {
	m := billing.PresentedMaterial{Name: "Dimmer", Units: []billing.PresentedUnit{{Name: "#1"}, {Name: "#2"}}}
	assert.Equal(t, "Dimmer [#1, #2]", materialLabel(m))
	assert.Equal(t, "Dimmer", materialLabel(billing.PresentedMaterial{Name: "Dimmer"}))
}
