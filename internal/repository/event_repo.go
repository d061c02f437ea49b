package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentalbilling/internal/model"
)

//go:generate mockgen -source=event_repo.go -destination=../mocks/repository/event_repo.go -package=mockrepository

// EventRepository loads bookings with everything a quote needs, in one go.
type EventRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	UpdateTaxes(ctx context.Context, id uuid.UUID, taxID *uuid.UUID, taxes string) error
	UpdateMaterialPrices(ctx context.Context, materials []model.EventMaterial) error
	CountByDegressiveRate(ctx context.Context, rateID uuid.UUID) (int64, error)
	CountByTax(ctx context.Context, taxID uuid.UUID) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var event model.Event
	err := GetDB(ctx, r.db).
		Preload("DegressiveRate.Tiers", func(db *gorm.DB) *gorm.DB { return db.Order("from_day ASC") }).
		Preload("Beneficiaries", byPosition).
		Preload("Beneficiaries.Beneficiary").
		Preload("Materials", byPosition).
		Preload("Materials.Material").
		Preload("Materials.Material.Units").
		Preload("Materials.Units", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		First(&event, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &event, nil
}

func (r *eventRepository) UpdateTaxes(ctx context.Context, id uuid.UUID, taxID *uuid.UUID, taxes string) error {
	res := GetDB(ctx, r.db).Model(&model.Event{}).Where("id = ?", id).
		Updates(map[string]any{"tax_id": taxID, "taxes": taxes})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *eventRepository) UpdateMaterialPrices(ctx context.Context, materials []model.EventMaterial) error {
	db := GetDB(ctx, r.db)
	for _, m := range materials {
		err := db.Model(&model.EventMaterial{}).Where("id = ?", m.ID).
			Updates(map[string]any{"rental_price": m.RentalPrice, "replacement_price": m.ReplacementPrice}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *eventRepository) CountByDegressiveRate(ctx context.Context, rateID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Event{}).Where("degressive_rate_id = ?", rateID).Count(&count).Error
	return count, err
}

func (r *eventRepository) CountByTax(ctx context.Context, taxID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Event{}).Where("tax_id = ?", taxID).Count(&count).Error
	return count, err
}
