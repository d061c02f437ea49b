package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesTotals(t *testing.T) {
	lines := NewLines(testMaterials(), testCatalog())

	totals := lines.CategoriesTotals()

	require.Len(t, totals, 2)
	assert.Equal(t, "Light", totals[0].Name)
	assert.Equal(t, 1, totals[0].Quantity)
	assert.Equal(t, "15.95", totals[0].SubTotal.String())
	assert.Equal(t, "Sound", totals[1].Name)
	assert.Equal(t, 2, totals[1].Quantity)
	assert.Equal(t, "325.5", totals[1].SubTotal.String())
}

func TestGroupingCompleteness(t *testing.T) {
	materials := testMaterials()
	materials[0].Quantity = 3
	materials[2].Quantity = 2
	lines := NewLines(materials, testCatalog())

	sum := 0
	for _, c := range lines.CategoriesTotals() {
		sum += c.Quantity
	}
	assert.Equal(t, lines.TotalQuantity(), sum)
	assert.Equal(t, 6, sum)

	countGroups := func(groups []MaterialGroup) int {
		n := 0
		for _, g := range groups {
			for _, m := range g.Materials {
				n += m.Quantity
			}
		}
		return n
	}
	assert.Equal(t, sum, countGroups(lines.ByCategory()))
	assert.Equal(t, sum, countGroups(lines.ByPark()))

	n := 0
	for _, g := range lines.BySubCategory() {
		for _, m := range g.Materials {
			n += m.Quantity
		}
	}
	assert.Equal(t, sum, n)
	assert.Len(t, lines.Flat(), 3)
}

func TestByCategoryFollowsCatalogOrder(t *testing.T) {
	materials := testMaterials()
	// Light first in booking order, Sound first in the catalog.
	materials[0], materials[2] = materials[2], materials[0]
	lines := NewLines(materials, testCatalog())

	groups := lines.ByCategory()

	require.Len(t, groups, 2)
	assert.Equal(t, soundID, groups[0].ID)
	require.Len(t, groups[0].Materials, 2)
	assert.Equal(t, "DBXPA2", groups[0].Materials[0].Reference)
	assert.Equal(t, "CL3", groups[0].Materials[1].Reference)
	assert.Equal(t, lightID, groups[1].ID)
}

func TestBySubCategory(t *testing.T) {
	miscID := uuid.MustParse("00000000-0000-0000-0000-0000000000c3")
	catalog := testCatalog()
	catalog.Categories = append(catalog.Categories, Category{ID: miscID, Name: "Misc"})
	materials := append(testMaterials(), MaterialLine{
		ID: uuid.New(), Name: "Cable box", Reference: "BOX", ParkID: mainParkID, CategoryID: miscID,
		RentalPrice: dec("4"), ReplacementPrice: dec("40"), Quantity: 2,
	})
	lines := NewLines(materials, catalog)

	groups := lines.BySubCategory()

	require.Len(t, groups, 4)
	assert.Equal(t, "Mixers", groups[0].Name)
	assert.Equal(t, "Sound", groups[0].Category)
	assert.True(t, groups[0].CategoryHasSubcategories)
	assert.Equal(t, "Processors", groups[1].Name)
	assert.Equal(t, "Dimmers", groups[2].Name)
	assert.Equal(t, "Light", groups[2].Category)

	assert.Equal(t, miscID, groups[3].ID)
	assert.Equal(t, "Misc", groups[3].Name)
	assert.False(t, groups[3].CategoryHasSubcategories)
}

func TestByPark(t *testing.T) {
	lines := NewLines(testMaterials(), testCatalog())

	groups := lines.ByPark()

	require.Len(t, groups, 2)
	assert.Equal(t, "Main warehouse", groups[0].Name)
	assert.Len(t, groups[0].Materials, 2)
	assert.Equal(t, "Spare warehouse", groups[1].Name)
	assert.Len(t, groups[1].Materials, 1)
}

func TestUnknownCategoryComesLast(t *testing.T) {
	materials := testMaterials()
	materials[0].CategoryID = uuid.MustParse("00000000-0000-0000-0000-0000000000ff")
	lines := NewLines(materials, testCatalog())

	groups := lines.ByCategory()

	require.Len(t, groups, 3)
	assert.Equal(t, "", groups[2].Name)
	assert.Equal(t, "CL3", groups[2].Materials[0].Reference)
}

func TestPresentedMaterial(t *testing.T) {
	lines := NewLines(testMaterials(), testCatalog())
	flat := lines.Flat()

	console := flat["CL3"]
	require.NotNil(t, console.Park)
	assert.Equal(t, "Main warehouse", *console.Park)
	assert.Nil(t, console.Units)
	assert.Equal(t, "300", console.Total.String())
	assert.Equal(t, "19400", console.TotalReplacementPrice.String())
	require.Len(t, console.Attributes, 1)

	processor := flat["DBXPA2"]
	assert.NotNil(t, processor.Attributes)
	assert.Empty(t, processor.Attributes)

	dimmer := flat["SDS-6-01"]
	assert.Nil(t, dimmer.Park)
	assert.Equal(t, []PresentedUnit{{Name: "SDS-6 #1", Park: "Spare warehouse"}}, dimmer.Units)
}

func TestHiddenLinesAreBilledButNotShown(t *testing.T) {
	materials := testMaterials()
	materials[1].IsHiddenOnBill = true
	lines := NewLines(materials, testCatalog())

	assert.Equal(t, "341.45", lines.DailyAmount().StringFixed(2))
	assert.Equal(t, 3, lines.TotalQuantity())
	assert.Len(t, lines.All(), 3)
	assert.Len(t, lines.Presented(), 2)
	assert.NotContains(t, lines.Flat(), "DBXPA2")

	for _, g := range lines.ByCategory() {
		for _, m := range g.Materials {
			assert.NotEqual(t, "DBXPA2", m.Reference)
		}
	}

	totals := lines.CategoriesTotals()
	require.Len(t, totals, 2)
	assert.Equal(t, 2, totals[1].Quantity)
}
