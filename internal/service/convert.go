package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"rentalbilling/internal/billing"
	"rentalbilling/internal/model"
)

func toCurve(rate model.DegressiveRate) (*billing.DegressiveRateCurve, error) {
	tiers := make([]billing.DegressiveRateTier, 0, len(rate.Tiers))
	for _, t := range rate.Tiers {
		tiers = append(tiers, billing.DegressiveRateTier{FromDay: t.FromDay, IsRate: t.IsRate, Value: t.Value})
	}
	curve, err := billing.NewDegressiveRateCurve(rate.Name, tiers)
	if err != nil {
		return nil, fmt.Errorf("degressive rate %q: %w", rate.Name, err)
	}
	return curve, nil
}

func toBillingTax(tax model.Tax) billing.Tax {
	if tax.IsGroup {
		components := make([]billing.TaxComponent, 0, len(tax.Components))
		for _, c := range tax.Components {
			components = append(components, billing.TaxComponent{Name: c.Name, IsRate: c.IsRate, Value: c.Value})
		}
		return billing.Tax{Name: tax.Name, IsGroup: true, Components: components}
	}
	t := billing.Tax{Name: tax.Name, Value: tax.Value.Decimal}
	if tax.IsRate != nil {
		t.IsRate = *tax.IsRate
	}
	return t
}

// decodeFlatTaxes reads taxes frozen on an event. Null means none were frozen.
func decodeFlatTaxes(raw string) ([]billing.FlatTax, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil, nil
	}
	var taxes []billing.FlatTax
	if err := json.Unmarshal([]byte(raw), &taxes); err != nil {
		return nil, fmt.Errorf("failed to decode frozen taxes: %w", err)
	}
	return taxes, nil
}

func decodeAttributes(raw string) ([]billing.Attribute, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil, nil
	}
	var attributes []billing.Attribute
	if err := json.Unmarshal([]byte(raw), &attributes); err != nil {
		return nil, fmt.Errorf("failed to decode material attributes: %w", err)
	}
	return attributes, nil
}

func toCatalog(categories []model.Category, parks []model.Park) billing.Catalog {
	catalog := billing.Catalog{
		Categories: make([]billing.Category, 0, len(categories)),
		Parks:      make([]billing.Park, 0, len(parks)),
	}
	for _, c := range categories {
		category := billing.Category{ID: c.ID, Name: c.Name}
		for _, sub := range c.SubCategories {
			category.SubCategories = append(category.SubCategories, billing.SubCategory{ID: sub.ID, Name: sub.Name})
		}
		catalog.Categories = append(catalog.Categories, category)
	}
	for _, p := range parks {
		catalog.Parks = append(catalog.Parks, billing.Park{ID: p.ID, Name: p.Name})
	}
	return catalog
}

func toMaterialLine(em model.EventMaterial) (billing.MaterialLine, error) {
	m := em.Material
	if m == nil {
		return billing.MaterialLine{}, fmt.Errorf("%w: booked material %s is missing", billing.ErrIncompleteBookingData, em.MaterialID)
	}
	attributes, err := decodeAttributes(m.Attributes)
	if err != nil {
		return billing.MaterialLine{}, err
	}

	line := billing.MaterialLine{
		ID:               m.ID,
		Name:             m.Name,
		Reference:        m.Reference,
		ParkID:           m.ParkID,
		CategoryID:       m.CategoryID,
		RentalPrice:      em.RentalPrice,
		ReplacementPrice: em.ReplacementPrice,
		IsDiscountable:   m.IsDiscountable,
		IsHiddenOnBill:   m.IsHiddenOnBill,
		Quantity:         em.Quantity,
		StockQuantity:    m.Stock,
		IsUnitTracked:    m.IsUnitTracked,
		Attributes:       attributes,
	}
	if m.SubCategoryID != nil {
		line.SubCategoryID = *m.SubCategoryID
	}
	if m.IsUnitTracked {
		line.StockQuantity = len(m.Units)
		for _, u := range em.Units {
			line.Units = append(line.Units, billing.Unit{Name: u.Name, ParkID: u.ParkID})
		}
	}
	return line, nil
}

func toSnapshot(event *model.Event, catalog billing.Catalog) (billing.BookingSnapshot, error) {
	snapshot := billing.BookingSnapshot{
		ID:        event.ID,
		Title:     event.Title,
		Location:  event.Location,
		StartDate: event.StartDate,
		EndDate:   event.EndDate,
		Currency:  event.Currency,
		Catalog:   catalog,
	}

	for _, eb := range event.Beneficiaries {
		b := eb.Beneficiary
		if b == nil {
			continue
		}
		snapshot.Beneficiaries = append(snapshot.Beneficiaries, billing.Beneficiary{
			ID:          b.ID,
			FullName:    b.FullName,
			Reference:   b.Reference,
			CompanyName: b.CompanyName,
			Street:      b.Street,
			PostalCode:  b.PostalCode,
			Locality:    b.Locality,
			Email:       b.Email,
			Phone:       b.Phone,
		})
	}

	for _, em := range event.Materials {
		line, err := toMaterialLine(em)
		if err != nil {
			return billing.BookingSnapshot{}, err
		}
		snapshot.Materials = append(snapshot.Materials, line)
	}

	if event.DegressiveRate != nil {
		curve, err := toCurve(*event.DegressiveRate)
		if err != nil {
			return billing.BookingSnapshot{}, err
		}
		snapshot.DegressiveRate = curve
	}

	taxes, err := decodeFlatTaxes(event.Taxes)
	if err != nil {
		return billing.BookingSnapshot{}, err
	}
	snapshot.Taxes = taxes

	return snapshot, nil
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
