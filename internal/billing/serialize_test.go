package billing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelRecord(t *testing.T) {
	q := newTestQuote(t)
	userID := uuid.MustParse("00000000-0000-0000-0000-0000000000f1")
	date := time.Date(2018, 12, 18, 10, 0, 0, 0, time.UTC)

	record := q.ToModelRecord(date, &userID)

	assert.Nil(t, record.Number)
	assert.Equal(t, date, record.Date)
	assert.Equal(t, eventID, record.EventID)
	assert.Equal(t, clientID, record.BeneficiaryID)
	assert.Equal(t, "1.75", record.DegressiveRate)
	assert.Equal(t, "0.0000", record.DiscountRate)
	assert.Equal(t, "20.00", record.VatRate)
	assert.Equal(t, "717.05", record.DueAmount)
	assert.Equal(t, "19808.90", record.ReplacementAmount)
	assert.Equal(t, "EUR", record.Currency)
	require.NotNil(t, record.UserID)
	assert.Equal(t, userID, *record.UserID)

	require.Len(t, record.Materials, 3)
	assert.Equal(t, "CL3", record.Materials[0].Reference)
	assert.Equal(t, "300.00", record.Materials[0].RentalPrice)
	assert.Equal(t, "349.90", record.Materials[1].ReplacementPrice)
	assert.True(t, record.Materials[2].IsDiscountable)

	require.Len(t, record.Taxes, 1)
	assert.Equal(t, "VAT", record.Taxes[0].Name)
}

func TestToModelRecordJSON(t *testing.T) {
	q := newTestQuote(t)
	require.NoError(t, q.SetDiscountRate(dec("33.33")))

	raw, err := json.Marshal(q.ToModelRecord(time.Date(2018, 12, 18, 0, 0, 0, 0, time.UTC), nil))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "number")
	assert.Equal(t, "33.3300", decoded["discount_rate"])
	assert.Equal(t, "688.03", decoded["due_amount"])
	assert.Nil(t, decoded["user_id"])
}

func TestToTemplateData(t *testing.T) {
	q := newTestQuote(t)
	date := time.Date(2018, 12, 18, 0, 0, 0, 0, time.UTC)

	data := q.ToTemplateData(date)

	assert.Equal(t, "First event", data.Event.Title)
	assert.Equal(t, 2, data.DaysCount)
	assert.Equal(t, "Jean Fountain", data.Beneficiary.FullName)
	assert.Equal(t, TemplateCurrency{Code: "EUR", Symbol: "€", Name: "Euro"}, data.Currency)
	assert.Equal(t, "Testing, Inc", data.Company.Name)
	assert.Equal(t, "68.29", data.DailyVatAmount.StringFixed(2))
	assert.Equal(t, "717.05", data.TotalInclTax.StringFixed(2))
	require.Len(t, data.Taxes, 1)
	assert.Equal(t, "119.51", data.Taxes[0].Amount.StringFixed(2))
	assert.Len(t, data.Categories, 2)
	assert.Len(t, data.Materials, 3)
	assert.Len(t, data.MaterialsByCategory, 2)
	assert.Len(t, data.MaterialsBySubCategory, 3)
	assert.Len(t, data.MaterialsByPark, 2)
	assert.Len(t, data.MaterialsFlat, 3)

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "19808.9", decoded["totalReplacement"])
	assert.Equal(t, "341.45", decoded["dailyAmount"])
	for _, key := range []string{"categoriesTotals", "materialsByCategories", "materialsBySubCategories", "materialsByParks", "materialsFlat"} {
		assert.Contains(t, decoded, key)
	}
}

func TestToTemplateDataForeignCurrency(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Currency = "USD"
	q, err := NewQuote(snapshot, testSettings(t))
	require.NoError(t, err)

	data := q.ToTemplateData(time.Now())

	assert.Equal(t, TemplateCurrency{Code: "USD"}, data.Currency)
}
