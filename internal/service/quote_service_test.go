package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rentalbilling/internal/billing"
	"rentalbilling/internal/model"
	"rentalbilling/internal/repository"
)

func newQuoteService(m *serviceMocks) *quoteService {
	return &quoteService{builder: m.builder(), now: fixedNow}
}

func TestGetEventQuote(t *testing.T) {
	testCases := []struct {
		name          string
		discount      string
		expectedExcl  string
		expectedVat   string
		expectedIncl  string
		expectedDisc  string
		expectedTaxes int
	}{
		{
			name:          "event_discount",
			discount:      "",
			expectedExcl:  "597.54",
			expectedVat:   "119.51",
			expectedIncl:  "717.05",
			expectedDisc:  "0.00",
			expectedTaxes: 1,
		},
		{
			name:          "explicit_discount",
			discount:      "33.33",
			expectedExcl:  "573.36",
			expectedVat:   "114.67",
			expectedIncl:  "688.03",
			expectedDisc:  "24.18",
			expectedTaxes: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)
			m.expectQuote(testEvent())
			svc := newQuoteService(m)

			data, err := svc.GetEventQuote(context.Background(), testEventID.String(), tc.discount)

			require.NoError(t, err)
			assert.Equal(t, billingDate, data.Date)
			assert.Equal(t, 2, data.DaysCount)
			assert.Equal(t, "341.45", data.DailyAmount.StringFixed(2))
			assert.Equal(t, "1.75", data.DegressiveRate.StringFixed(2))
			assert.Equal(t, tc.expectedDisc, data.DiscountAmount.StringFixed(2))
			assert.Equal(t, tc.expectedExcl, data.TotalExclTax.StringFixed(2))
			assert.Equal(t, tc.expectedVat, data.VatAmount.StringFixed(2))
			assert.Equal(t, tc.expectedIncl, data.TotalInclTax.StringFixed(2))
			assert.Equal(t, "19808.90", data.ReplacementAmount.StringFixed(2))
			assert.Len(t, data.Taxes, tc.expectedTaxes)
			assert.Equal(t, "Jean Fountain", data.Beneficiary.FullName)
			assert.Equal(t, "€", data.Currency.Symbol)
		})
	}
}

func TestGetEventQuoteUsesEventDiscount(t *testing.T) {
	m := newServiceMocks(t)
	event := testEvent()
	event.DiscountRate = dec("33.33")
	m.expectQuote(event)

	data, err := newQuoteService(m).GetEventQuote(context.Background(), testEventID.String(), "  ")

	require.NoError(t, err)
	assert.Equal(t, "688.03", data.TotalInclTax.StringFixed(2))
}

func TestGetEventQuoteFrozenValuesWin(t *testing.T) {
	m := newServiceMocks(t)
	event := testEvent()
	event.Taxes = `[]`
	event.DegressiveRate = &model.DegressiveRate{Name: "Flat"}
	m.expectQuote(event)

	data, err := newQuoteService(m).GetEventQuote(context.Background(), testEventID.String(), "")

	require.NoError(t, err)
	assert.Equal(t, "2.00", data.DegressiveRate.StringFixed(2))
	assert.Empty(t, data.Taxes)
	assert.Equal(t, "682.90", data.TotalInclTax.StringFixed(2))
}

func TestGetEventQuoteWithoutDefaults(t *testing.T) {
	m := newServiceMocks(t)
	m.events.EXPECT().FindByID(gomock.Any(), testEventID).Return(testEvent(), nil)
	m.catalog.EXPECT().Categories(gomock.Any()).Return(testCategories(), nil)
	m.catalog.EXPECT().Parks(gomock.Any()).Return(testParks(), nil)
	m.rates.EXPECT().FindDefault(gomock.Any()).Return(nil, repository.ErrNotFound)
	m.taxes.EXPECT().FindDefault(gomock.Any()).Return(nil, repository.ErrNotFound)

	data, err := newQuoteService(m).GetEventQuote(context.Background(), testEventID.String(), "")

	require.NoError(t, err)
	assert.Equal(t, "2.00", data.DegressiveRate.StringFixed(2))
	assert.Equal(t, "682.90", data.TotalExclTax.StringFixed(2))
	assert.True(t, data.VatAmount.IsZero())
	assert.Equal(t, "682.90", data.TotalInclTax.StringFixed(2))
}

func TestGetEventQuoteErrors(t *testing.T) {
	testCases := []struct {
		name        string
		eventID     string
		discount    string
		setup       func(m *serviceMocks)
		expectedErr error
	}{
		{
			name:        "malformed_event_id",
			eventID:     "not-a-uuid",
			setup:       func(m *serviceMocks) {},
			expectedErr: billing.ErrInvalidArgument,
		},
		{
			name:    "unknown_event",
			eventID: uuid.NewString(),
			setup: func(m *serviceMocks) {
				m.events.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, repository.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name:     "discount_not_a_number",
			eventID:  testEventID.String(),
			discount: "ten",
			setup: func(m *serviceMocks) {
				m.events.EXPECT().FindByID(gomock.Any(), testEventID).Return(testEvent(), nil)
			},
			expectedErr: billing.ErrInvalidDiscountRate,
		},
		{
			name:     "discount_out_of_range",
			eventID:  testEventID.String(),
			discount: "120",
			setup: func(m *serviceMocks) {
				m.expectQuote(testEvent())
			},
			expectedErr: billing.ErrInvalidDiscountRate,
		},
		{
			name:    "event_without_materials",
			eventID: testEventID.String(),
			setup: func(m *serviceMocks) {
				event := testEvent()
				event.Materials = nil
				m.expectQuote(event)
			},
			expectedErr: billing.ErrIncompleteBookingData,
		},
		{
			name:    "event_without_beneficiary",
			eventID: testEventID.String(),
			setup: func(m *serviceMocks) {
				event := testEvent()
				event.Beneficiaries = nil
				m.expectQuote(event)
			},
			expectedErr: billing.ErrIncompleteBookingData,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)
			tc.setup(m)

			data, err := newQuoteService(m).GetEventQuote(context.Background(), tc.eventID, tc.discount)

			assert.Nil(t, data)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}
