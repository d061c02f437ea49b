package billing

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Attribute is a descriptive property of a material, shown on documents.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// Unit is a serialized unit of a unit-tracked material.
type Unit struct {
	Name   string    `json:"name"`
	ParkID uuid.UUID `json:"park_id"`
}

// MaterialLine is one booked material with the quantity and prices frozen for the booking.
type MaterialLine struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Reference        string          `json:"reference"`
	ParkID           uuid.UUID       `json:"park_id"`
	CategoryID       uuid.UUID       `json:"category_id"`
	SubCategoryID    uuid.UUID       `json:"sub_category_id"`
	RentalPrice      decimal.Decimal `json:"rental_price"`
	ReplacementPrice decimal.Decimal `json:"replacement_price"`
	IsDiscountable   bool            `json:"is_discountable"`
	IsHiddenOnBill   bool            `json:"is_hidden_on_bill"`
	Quantity         int             `json:"quantity"`

	// StockQuantity is the bulk stock, or the number of tracked units for unit-tracked materials.
	StockQuantity int         `json:"stock_quantity"`
	IsUnitTracked bool        `json:"is_unit_tracked"`
	Units         []Unit      `json:"units,omitempty"`
	Attributes    []Attribute `json:"attributes,omitempty"`
}

func (l MaterialLine) total() decimal.Decimal {
	return l.RentalPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l MaterialLine) totalReplacement() decimal.Decimal {
	return l.ReplacementPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type SubCategory struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Category struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	SubCategories []SubCategory `json:"sub_categories,omitempty"`
}

type Park struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Catalog resolves category, sub-category and park names, in their declared order.
type Catalog struct {
	Categories []Category `json:"categories"`
	Parks      []Park     `json:"parks"`
}

type catalogIndex struct {
	categories    map[uuid.UUID]int
	subCategories map[uuid.UUID]subCategoryRef
	parks         map[uuid.UUID]Park
}

type subCategoryRef struct {
	category int
	position int
	name     string
}

func indexCatalog(c Catalog) catalogIndex {
	idx := catalogIndex{
		categories:    make(map[uuid.UUID]int, len(c.Categories)),
		subCategories: make(map[uuid.UUID]subCategoryRef),
		parks:         make(map[uuid.UUID]Park, len(c.Parks)),
	}
	for i, cat := range c.Categories {
		idx.categories[cat.ID] = i
		for j, sub := range cat.SubCategories {
			idx.subCategories[sub.ID] = subCategoryRef{category: i, position: j, name: sub.Name}
		}
	}
	for _, park := range c.Parks {
		idx.parks[park.ID] = park
	}
	return idx
}

// PresentedUnit is a booked unit as shown on documents.
type PresentedUnit struct {
	Name string `json:"name"`
	Park string `json:"park"`
}

// PresentedMaterial is a material line as shown on documents.
type PresentedMaterial struct {
	Reference             string          `json:"reference"`
	Name                  string          `json:"name"`
	StockQuantity         int             `json:"stockQuantity"`
	Attributes            []Attribute     `json:"attributes"`
	Park                  *string         `json:"park,omitempty"`
	Units                 []PresentedUnit `json:"units,omitempty"`
	Quantity              int             `json:"quantity"`
	RentalPrice           decimal.Decimal `json:"rentalPrice"`
	ReplacementPrice      decimal.Decimal `json:"replacementPrice"`
	Total                 decimal.Decimal `json:"total"`
	TotalReplacementPrice decimal.Decimal `json:"totalReplacementPrice"`
}

// CategoryTotal sums quantities and rental amounts of one category.
type CategoryTotal struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	SubTotal decimal.Decimal `json:"subTotal"`
}

// MaterialGroup is a set of presented materials sharing a category or a park.
type MaterialGroup struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Materials []PresentedMaterial `json:"materials"`
}

// SubCategoryGroup is a set of presented materials sharing a sub-category. Materials of a
// category without sub-category are grouped under the category itself.
type SubCategoryGroup struct {
	ID                       uuid.UUID           `json:"id"`
	Name                     string              `json:"name"`
	Category                 string              `json:"category"`
	CategoryHasSubcategories bool                `json:"categoryHasSubcategories"`
	Materials                []PresentedMaterial `json:"materials"`
}

// Lines aggregates material lines. It is read-only once built.
type Lines struct {
	lines   []MaterialLine
	catalog Catalog
	index   catalogIndex
}

// NewLines copies the lines so later changes by the caller do not leak in.
func NewLines(lines []MaterialLine, catalog Catalog) *Lines {
	copied := make([]MaterialLine, len(lines))
	copy(copied, lines)
	return &Lines{lines: copied, catalog: catalog, index: indexCatalog(catalog)}
}

// All returns a copy of every line, hidden ones included.
func (l *Lines) All() []MaterialLine {
	out := make([]MaterialLine, len(l.lines))
	copy(out, l.lines)
	return out
}

// DailyAmount is the sum of quantity × rental price.
func (l *Lines) DailyAmount() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l.lines {
		total = total.Add(line.total())
	}
	return total
}

// DiscountableDailyAmount is DailyAmount restricted to discountable lines.
func (l *Lines) DiscountableDailyAmount() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l.lines {
		if line.IsDiscountable {
			total = total.Add(line.total())
		}
	}
	return total
}

// ReplacementAmount is the sum of quantity × replacement price.
func (l *Lines) ReplacementAmount() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l.lines {
		total = total.Add(line.totalReplacement())
	}
	return total
}

// TotalQuantity sums the quantities of every line.
func (l *Lines) TotalQuantity() int {
	total := 0
	for _, line := range l.lines {
		total += line.Quantity
	}
	return total
}

// CategoriesTotals groups every line by category. The most recently introduced category
// comes first.
func (l *Lines) CategoriesTotals() []CategoryTotal {
	positions := make(map[uuid.UUID]int)
	var totals []CategoryTotal
	for _, line := range l.lines {
		pos, ok := positions[line.CategoryID]
		if !ok {
			pos = len(totals)
			positions[line.CategoryID] = pos
			totals = append(totals, CategoryTotal{ID: line.CategoryID, Name: l.categoryName(line.CategoryID)})
		}
		totals[pos].Quantity += line.Quantity
		totals[pos].SubTotal = totals[pos].SubTotal.Add(line.total())
	}

	for i, j := 0, len(totals)-1; i < j; i, j = i+1, j-1 {
		totals[i], totals[j] = totals[j], totals[i]
	}
	return totals
}

// ByCategory groups visible lines by category, in catalog order. Unknown categories come last.
func (l *Lines) ByCategory() []MaterialGroup {
	groups := make(map[uuid.UUID]*MaterialGroup)
	var order []uuid.UUID
	for _, line := range l.visible() {
		g, ok := groups[line.CategoryID]
		if !ok {
			g = &MaterialGroup{ID: line.CategoryID, Name: l.categoryName(line.CategoryID)}
			groups[line.CategoryID] = g
			order = append(order, line.CategoryID)
		}
		g.Materials = append(g.Materials, l.present(line))
	}

	sort.SliceStable(order, func(i, j int) bool {
		return l.categoryRank(order[i]) < l.categoryRank(order[j])
	})
	out := make([]MaterialGroup, 0, len(order))
	for _, id := range order {
		out = append(out, *groups[id])
	}
	return out
}

// BySubCategory groups visible lines by sub-category, ordered by category then sub-category.
func (l *Lines) BySubCategory() []SubCategoryGroup {
	type key struct{ category, sub uuid.UUID }
	groups := make(map[key]*SubCategoryGroup)
	var order []key
	for _, line := range l.visible() {
		k := key{category: line.CategoryID, sub: line.SubCategoryID}
		if _, known := l.index.subCategories[line.SubCategoryID]; !known {
			k.sub = uuid.Nil
		}
		g, ok := groups[k]
		if !ok {
			categoryName := l.categoryName(k.category)
			g = &SubCategoryGroup{
				ID:                       k.category,
				Name:                     categoryName,
				Category:                 categoryName,
				CategoryHasSubcategories: l.categoryHasSubcategories(k.category),
			}
			if k.sub != uuid.Nil {
				g.ID = k.sub
				g.Name = l.index.subCategories[k.sub].name
			}
			groups[k] = g
			order = append(order, k)
		}
		g.Materials = append(g.Materials, l.present(line))
	}

	sort.SliceStable(order, func(i, j int) bool {
		ci, cj := l.categoryRank(order[i].category), l.categoryRank(order[j].category)
		if ci != cj {
			return ci < cj
		}
		return l.subCategoryRank(order[i].sub) < l.subCategoryRank(order[j].sub)
	})
	out := make([]SubCategoryGroup, 0, len(order))
	for _, k := range order {
		out = append(out, *groups[k])
	}
	return out
}

// ByPark groups visible lines by park, in catalog order. Unknown parks come last.
func (l *Lines) ByPark() []MaterialGroup {
	groups := make(map[uuid.UUID]*MaterialGroup)
	var order []uuid.UUID
	for _, line := range l.visible() {
		g, ok := groups[line.ParkID]
		if !ok {
			g = &MaterialGroup{ID: line.ParkID, Name: l.index.parks[line.ParkID].Name}
			groups[line.ParkID] = g
			order = append(order, line.ParkID)
		}
		g.Materials = append(g.Materials, l.present(line))
	}

	rank := make(map[uuid.UUID]int, len(l.catalog.Parks))
	for i, park := range l.catalog.Parks {
		rank[park.ID] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		ri, ok := rank[order[i]]
		if !ok {
			ri = len(rank)
		}
		rj, ok := rank[order[j]]
		if !ok {
			rj = len(rank)
		}
		return ri < rj
	})
	out := make([]MaterialGroup, 0, len(order))
	for _, id := range order {
		out = append(out, *groups[id])
	}
	return out
}

// Flat keys visible lines by reference.
func (l *Lines) Flat() map[string]PresentedMaterial {
	out := make(map[string]PresentedMaterial)
	for _, line := range l.visible() {
		out[line.Reference] = l.present(line)
	}
	return out
}

// Presented lists visible lines in booking order.
func (l *Lines) Presented() []PresentedMaterial {
	visible := l.visible()
	out := make([]PresentedMaterial, 0, len(visible))
	for _, line := range visible {
		out = append(out, l.present(line))
	}
	return out
}

func (l *Lines) visible() []MaterialLine {
	out := make([]MaterialLine, 0, len(l.lines))
	for _, line := range l.lines {
		if !line.IsHiddenOnBill {
			out = append(out, line)
		}
	}
	return out
}

func (l *Lines) present(line MaterialLine) PresentedMaterial {
	attributes := line.Attributes
	if attributes == nil {
		attributes = []Attribute{}
	}
	p := PresentedMaterial{
		Reference:             line.Reference,
		Name:                  line.Name,
		StockQuantity:         line.StockQuantity,
		Attributes:            attributes,
		Quantity:              line.Quantity,
		RentalPrice:           line.RentalPrice,
		ReplacementPrice:      line.ReplacementPrice,
		Total:                 line.total(),
		TotalReplacementPrice: line.totalReplacement(),
	}
	if line.IsUnitTracked {
		p.Units = make([]PresentedUnit, 0, len(line.Units))
		for _, unit := range line.Units {
			p.Units = append(p.Units, PresentedUnit{Name: unit.Name, Park: l.index.parks[unit.ParkID].Name})
		}
		return p
	}
	park := l.index.parks[line.ParkID].Name
	p.Park = &park
	return p
}

func (l *Lines) categoryName(id uuid.UUID) string {
	if pos, ok := l.index.categories[id]; ok {
		return l.catalog.Categories[pos].Name
	}
	return ""
}

func (l *Lines) categoryRank(id uuid.UUID) int {
	if pos, ok := l.index.categories[id]; ok {
		return pos
	}
	return len(l.catalog.Categories)
}

func (l *Lines) subCategoryRank(id uuid.UUID) int {
	if id == uuid.Nil {
		return -1
	}
	return l.index.subCategories[id].position
}

func (l *Lines) categoryHasSubcategories(id uuid.UUID) bool {
	if pos, ok := l.index.categories[id]; ok {
		return len(l.catalog.Categories[pos].SubCategories) > 0
	}
	return false
}
