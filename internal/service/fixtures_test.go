package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"rentalbilling/internal/billing"
	"rentalbilling/internal/config"
	mockrepository "rentalbilling/internal/mocks/repository"
	"rentalbilling/internal/model"
)

var (
	soundID      = uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
	lightID      = uuid.MustParse("00000000-0000-0000-0000-0000000000c2")
	mixersID     = uuid.MustParse("00000000-0000-0000-0000-0000000000d1")
	processorsID = uuid.MustParse("00000000-0000-0000-0000-0000000000d2")
	dimmersID    = uuid.MustParse("00000000-0000-0000-0000-0000000000d3")
	mainParkID   = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	spareParkID  = uuid.MustParse("00000000-0000-0000-0000-0000000000a2")
	testEventID  = uuid.MustParse("00000000-0000-0000-0000-0000000000e1")
	clientID     = uuid.MustParse("00000000-0000-0000-0000-0000000000b1")
	rateID       = uuid.MustParse("00000000-0000-0000-0000-0000000000f1")
	vatID        = uuid.MustParse("00000000-0000-0000-0000-0000000000f2")
	testUserID   = "00000000-0000-0000-0000-000000000999"
)

var billingDate = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testConfig() *config.Config {
	return &config.Config{
		Currency: billing.Currency{Code: "EUR", Symbol: "€", Name: "Euro"},
		Locale:   "fr",
		Company:  billing.Company{Name: "Testing, Inc", Locality: "Megacity", Country: "France"},
	}
}

func testCategories() []model.Category {
	return []model.Category{
		{ID: soundID, Name: "Sound", Position: 1, SubCategories: []model.SubCategory{
			{ID: mixersID, CategoryID: soundID, Name: "Mixers"},
			{ID: processorsID, CategoryID: soundID, Name: "Processors", Position: 1},
		}},
		{ID: lightID, Name: "Light", Position: 2, SubCategories: []model.SubCategory{
			{ID: dimmersID, CategoryID: lightID, Name: "Dimmers"},
		}},
	}
}

func testParks() []model.Park {
	return []model.Park{
		{ID: mainParkID, Name: "Main warehouse"},
		{ID: spareParkID, Name: "Spare warehouse", Position: 1},
	}
}

// defaultRate yields 1.75 for a two-day rental.
func defaultRate() *model.DegressiveRate {
	return &model.DegressiveRate{
		ID: rateID, Name: "Daily", IsDefault: true,
		Tiers: []model.DegressiveRateTier{
			{DegressiveRateID: rateID, FromDay: 2, IsRate: true, Value: dec("75")},
			{DegressiveRateID: rateID, FromDay: 7, IsRate: false, Value: dec("0.70")},
		},
	}
}

func defaultVAT() *model.Tax {
	isRate := true
	return &model.Tax{ID: vatID, Name: "VAT", IsRate: &isRate, Value: decimal.NewNullDecimal(dec("20")), IsDefault: true}
}

func ptr[T any](v T) *T { return &v }

// testEvent books a console, a processor and a dimmer for two days. Its quote totals 717.05.
func testEvent() *model.Event {
	console := &model.Material{
		ID: uuid.MustParse("00000000-0000-0000-0000-000000000101"), Reference: "CL3", Name: "Yamaha CL3 console",
		ParkID: mainParkID, CategoryID: soundID, SubCategoryID: ptr(mixersID),
		RentalPrice: dec("300"), ReplacementPrice: dec("19400"), Stock: 5,
		Attributes: `[{"name":"Weight","value":"36.5","unit":"kg"}]`,
	}
	processor := &model.Material{
		ID: uuid.MustParse("00000000-0000-0000-0000-000000000102"), Reference: "DBXPA2", Name: "DBX PA2 processor",
		ParkID: mainParkID, CategoryID: soundID, SubCategoryID: ptr(processorsID),
		RentalPrice: dec("25.5"), ReplacementPrice: dec("349.9"), Stock: 2, IsDiscountable: true,
	}
	dimmerUnit := model.MaterialUnit{ID: uuid.New(), ParkID: spareParkID, Name: "SDS-6 #1"}
	dimmer := &model.Material{
		ID: uuid.MustParse("00000000-0000-0000-0000-000000000103"), Reference: "SDS-6-01", Name: "Showtec SDS-6 dimmer",
		ParkID: spareParkID, CategoryID: lightID, SubCategoryID: ptr(dimmersID),
		RentalPrice: dec("15.95"), ReplacementPrice: dec("59"), IsDiscountable: true, IsUnitTracked: true,
		Units: []model.MaterialUnit{dimmerUnit, {ID: uuid.New(), ParkID: spareParkID, Name: "SDS-6 #2"}},
	}

	booked := func(m *model.Material, position int) model.EventMaterial {
		return model.EventMaterial{
			ID: uuid.New(), EventID: testEventID, MaterialID: m.ID, Material: m, Quantity: 1,
			RentalPrice: m.RentalPrice, ReplacementPrice: m.ReplacementPrice, Position: position,
		}
	}
	dimmerLine := booked(dimmer, 2)
	dimmerLine.Units = []model.MaterialUnit{dimmerUnit}

	return &model.Event{
		ID:        testEventID,
		Title:     "First event",
		Location:  "Gap",
		StartDate: time.Date(2018, 12, 17, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2018, 12, 18, 23, 59, 59, 0, time.UTC),
		Currency:  "EUR",
		Beneficiaries: []model.EventBeneficiary{{
			EventID: testEventID, BeneficiaryID: clientID,
			Beneficiary: &model.Beneficiary{ID: clientID, FullName: "Jean Fountain", Reference: "0001", Locality: "Gap"},
		}},
		Materials: []model.EventMaterial{booked(console, 0), booked(processor, 1), dimmerLine},
	}
}

type serviceMocks struct {
	events    *mockrepository.MockEventRepository
	catalog   *mockrepository.MockCatalogRepository
	rates     *mockrepository.MockDegressiveRateRepository
	taxes     *mockrepository.MockTaxRepository
	bills     *mockrepository.MockBillRepository
	estimates *mockrepository.MockEstimateRepository
	audit     *mockrepository.MockAuditRepository
	tx        *mockrepository.MockTransactionManager
	publisher *fakePublisher
	renderer  *fakeRenderer
}

func newServiceMocks(t *testing.T) *serviceMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &serviceMocks{
		events:    mockrepository.NewMockEventRepository(ctrl),
		catalog:   mockrepository.NewMockCatalogRepository(ctrl),
		rates:     mockrepository.NewMockDegressiveRateRepository(ctrl),
		taxes:     mockrepository.NewMockTaxRepository(ctrl),
		bills:     mockrepository.NewMockBillRepository(ctrl),
		estimates: mockrepository.NewMockEstimateRepository(ctrl),
		audit:     mockrepository.NewMockAuditRepository(ctrl),
		tx:        mockrepository.NewMockTransactionManager(ctrl),
		publisher: &fakePublisher{},
		renderer:  &fakeRenderer{},
	}
}

func (m *serviceMocks) builder() *quoteBuilder {
	return &quoteBuilder{cfg: testConfig(), eventRepo: m.events, catalogRepo: m.catalog, rateRepo: m.rates, taxRepo: m.taxes}
}

// expectQuote stubs every read a quote needs, with the default rate and VAT available.
func (m *serviceMocks) expectQuote(event *model.Event) {
	m.events.EXPECT().FindByID(gomock.Any(), event.ID).Return(event, nil)
	m.expectSettings()
}

func (m *serviceMocks) expectSettings() {
	m.catalog.EXPECT().Categories(gomock.Any()).Return(testCategories(), nil)
	m.catalog.EXPECT().Parks(gomock.Any()).Return(testParks(), nil)
	m.rates.EXPECT().FindDefault(gomock.Any()).Return(defaultRate(), nil)
	m.taxes.EXPECT().FindDefault(gomock.Any()).Return(defaultVAT(), nil)
}

// expectTx runs transactional work inline.
func (m *serviceMocks) expectTx() {
	m.tx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return fn(ctx)
		})
}

func fixedNow() time.Time { return billingDate }

type publishedEvent struct {
	Type    string
	Payload any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) Publish(eventType string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Type: eventType, Payload: payload})
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeRenderer struct {
	data *billing.TemplateData
	err  error
}

func (r *fakeRenderer) Render(data *billing.TemplateData) ([]byte, error) {
	r.data = data
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.3 test"), nil
}

func nopLogger() *zap.Logger { return zap.NewNop() }
