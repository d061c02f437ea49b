package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rentalbilling/internal/billing"
	mockservice "rentalbilling/internal/mocks/service"
	"rentalbilling/internal/repository"
	"rentalbilling/internal/service"
)

type eventMocks struct {
	quotes    *mockservice.MockQuoteService
	bills     *mockservice.MockBillService
	estimates *mockservice.MockEstimateService
	resync    *mockservice.MockResyncService
}

func newEventRouter(t *testing.T, idempotent gin.HandlerFunc) (*gin.Engine, eventMocks) {
	ctrl := gomock.NewController(t)
	m := eventMocks{
		quotes:    mockservice.NewMockQuoteService(ctrl),
		bills:     mockservice.NewMockBillService(ctrl),
		estimates: mockservice.NewMockEstimateService(ctrl),
		resync:    mockservice.NewMockResyncService(ctrl),
	}
	h := NewEventHandler(m.quotes, m.bills, m.estimates, m.resync, idempotent)
	return newTestRouter(h), m
}

func TestGetQuote(t *testing.T) {
	testCases := []struct {
		name           string
		query          string
		setup          func(m eventMocks)
		expectedStatus int
	}{
		{
			name:  "passes the discount override",
			query: "?discount=33.33",
			setup: func(m eventMocks) {
				m.quotes.EXPECT().GetEventQuote(gomock.Any(), testEventID, "33.33").
					Return(&billing.TemplateData{TotalInclTax: decimal.RequireFromString("688.03")}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown event",
			setup: func(m eventMocks) {
				m.quotes.EXPECT().GetEventQuote(gomock.Any(), testEventID, "").Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "invalid discount",
			query: "?discount=abc",
			setup: func(m eventMocks) {
				m.quotes.EXPECT().GetEventQuote(gomock.Any(), testEventID, "abc").Return(nil, billing.ErrInvalidDiscountRate)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "incomplete booking",
			setup: func(m eventMocks) {
				m.quotes.EXPECT().GetEventQuote(gomock.Any(), testEventID, "").Return(nil, billing.ErrIncompleteBookingData)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newEventRouter(t, nil)
			tc.setup(m)

			w := perform(r, http.MethodGet, "/api/events/"+testEventID+"/quote"+tc.query, "")

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"totalInclTaxes":"688.03"`)
			}
		})
	}
}

func TestGetBillPDF(t *testing.T) {
	r, m := newEventRouter(t, nil)
	m.bills.EXPECT().RenderBillPDF(gomock.Any(), testEventID, "").
		Return([]byte("%PDF-1.3 test"), "bill-2024-00001.pdf", nil)

	w := perform(r, http.MethodGet, "/api/events/"+testEventID+"/bill.pdf", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="bill-2024-00001.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3 test", w.Body.String())
}

func TestCreateBill(t *testing.T) {
	discount := "10"

	testCases := []struct {
		name           string
		body           string
		setup          func(m eventMocks)
		expectedStatus int
	}{
		{
			name: "empty body keeps the event discount",
			setup: func(m eventMocks) {
				m.bills.EXPECT().CreateBill(gomock.Any(), testUserID, testEventID, service.CreateDocumentRequest{}).
					Return(service.DocumentResponse{ID: "bill-1", Number: "2024-00001", Date: time.Now()}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "discount override",
			body: `{"discount_rate":"10"}`,
			setup: func(m eventMocks) {
				m.bills.EXPECT().CreateBill(gomock.Any(), testUserID, testEventID, service.CreateDocumentRequest{DiscountRate: &discount}).
					Return(service.DocumentResponse{ID: "bill-1", Number: "2024-00001"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			body:           `{"discount_rate":`,
			setup:          func(m eventMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "number collision",
			setup: func(m eventMocks) {
				m.bills.EXPECT().CreateBill(gomock.Any(), testUserID, testEventID, gomock.Any()).
					Return(service.DocumentResponse{}, service.ErrDuplicateBillNumber)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newEventRouter(t, nil)
			tc.setup(m)

			w := perform(r, http.MethodPost, "/api/events/"+testEventID+"/bills", tc.body)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestCreateRoutesRunIdempotencyGuard(t *testing.T) {
	guarded := 0
	guard := func(c *gin.Context) {
		guarded++
		c.Next()
	}
	r, m := newEventRouter(t, guard)
	m.estimates.EXPECT().CreateEstimate(gomock.Any(), testUserID, testEventID, gomock.Any()).
		Return(service.DocumentResponse{ID: "estimate-1"}, nil)
	m.estimates.EXPECT().ListEstimatesForEvent(gomock.Any(), testEventID).
		Return([]service.DocumentResponse{{ID: "estimate-1"}}, nil)

	w := perform(r, http.MethodPost, "/api/events/"+testEventID+"/estimates", "")
	require.Equal(t, http.StatusCreated, w.Code)
	w = perform(r, http.MethodGet, "/api/events/"+testEventID+"/estimates", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1, guarded)
}

func TestResyncRoutes(t *testing.T) {
	t.Run("taxes", func(t *testing.T) {
		r, m := newEventRouter(t, nil)
		m.resync.EXPECT().ResyncEventTaxes(gomock.Any(), testUserID, testEventID).
			Return(service.ResyncResponse{EventID: testEventID}, nil)

		w := perform(r, http.MethodPut, "/api/events/"+testEventID+"/resync-taxes", "")

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "success", resp.Status)
	})

	t.Run("prices after a currency change", func(t *testing.T) {
		r, m := newEventRouter(t, nil)
		m.resync.EXPECT().ResyncMaterialPrices(gomock.Any(), testUserID, testEventID).
			Return(service.ResyncResponse{}, billing.ErrInvalidCurrencyResynchronization)

		w := perform(r, http.MethodPut, "/api/events/"+testEventID+"/resync-prices", "")

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, billing.ErrInvalidCurrencyResynchronization.Error(), resp.Error)
	})
}
