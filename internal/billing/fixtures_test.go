package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	soundID      = uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
	lightID      = uuid.MustParse("00000000-0000-0000-0000-0000000000c2")
	mixersID     = uuid.MustParse("00000000-0000-0000-0000-0000000000d1")
	processorsID = uuid.MustParse("00000000-0000-0000-0000-0000000000d2")
	dimmersID    = uuid.MustParse("00000000-0000-0000-0000-0000000000d3")
	mainParkID   = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	sparePark    = uuid.MustParse("00000000-0000-0000-0000-0000000000a2")
	eventID      = uuid.MustParse("00000000-0000-0000-0000-0000000000e1")
	clientID     = uuid.MustParse("00000000-0000-0000-0000-0000000000b1")
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCatalog() Catalog {
	return Catalog{
		Categories: []Category{
			{ID: soundID, Name: "Sound", SubCategories: []SubCategory{
				{ID: mixersID, Name: "Mixers"},
				{ID: processorsID, Name: "Processors"},
			}},
			{ID: lightID, Name: "Light", SubCategories: []SubCategory{
				{ID: dimmersID, Name: "Dimmers"},
			}},
		},
		Parks: []Park{
			{ID: mainParkID, Name: "Main warehouse"},
			{ID: sparePark, Name: "Spare warehouse"},
		},
	}
}

func testMaterials() []MaterialLine {
	return []MaterialLine{
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000101"), Name: "Yamaha CL3 console", Reference: "CL3",
			ParkID: mainParkID, CategoryID: soundID, SubCategoryID: mixersID,
			RentalPrice: dec("300"), ReplacementPrice: dec("19400"), Quantity: 1, StockQuantity: 5,
			Attributes: []Attribute{{Name: "Weight", Value: "36.5", Unit: "kg"}},
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000102"), Name: "DBX PA2 processor", Reference: "DBXPA2",
			ParkID: mainParkID, CategoryID: soundID, SubCategoryID: processorsID,
			RentalPrice: dec("25.5"), ReplacementPrice: dec("349.9"), IsDiscountable: true, Quantity: 1, StockQuantity: 2,
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000103"), Name: "Showtec SDS-6 dimmer", Reference: "SDS-6-01",
			ParkID: sparePark, CategoryID: lightID, SubCategoryID: dimmersID,
			RentalPrice: dec("15.95"), ReplacementPrice: dec("59"), IsDiscountable: true, Quantity: 1, StockQuantity: 2,
			IsUnitTracked: true, Units: []Unit{{Name: "SDS-6 #1", ParkID: sparePark}},
		},
	}
}

// referenceCurve yields 1.00, 1.75, 3.25 and 7.55 for 1, 2, 4 and 10 days.
func referenceCurve(t *testing.T) *DegressiveRateCurve {
	t.Helper()
	curve, err := NewDegressiveRateCurve("Daily", []DegressiveRateTier{
		{FromDay: 7, IsRate: false, Value: dec("0.70")},
		{FromDay: 2, IsRate: true, Value: dec("75")},
	})
	require.NoError(t, err)
	return curve
}

func testSettings(t *testing.T) Settings {
	t.Helper()
	return Settings{
		Currency: Currency{Code: "EUR", Symbol: "€", Name: "Euro"},
		Locale:   "fr",
		Company: Company{
			Name: "Testing, Inc", Street: "1 company street", ZipCode: "1234",
			Locality: "Megacity", Country: "France", Phone: "+33123456789", VATNumber: "FR12345678901",
		},
		DegressiveRate: referenceCurve(t),
		Taxes:          []FlatTax{{Name: "VAT", IsRate: true, Value: dec("20")}},
	}
}

func testSnapshot() BookingSnapshot {
	return BookingSnapshot{
		ID:        eventID,
		Title:     "First event",
		Location:  "Gap",
		StartDate: time.Date(2018, 12, 17, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2018, 12, 18, 23, 59, 59, 0, time.UTC),
		Currency:  "EUR",
		Beneficiaries: []Beneficiary{
			{ID: clientID, FullName: "Jean Fountain", Reference: "0001", Locality: "Gap"},
		},
		Materials: testMaterials(),
		Catalog:   testCatalog(),
	}
}

func newTestQuote(t *testing.T) *Quote {
	t.Helper()
	q, err := NewQuote(testSnapshot(), testSettings(t))
	require.NoError(t, err)
	return q
}
