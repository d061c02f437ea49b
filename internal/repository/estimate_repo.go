package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentalbilling/internal/model"
)

//go:generate mockgen -source=estimate_repo.go -destination=../mocks/repository/estimate_repo.go -package=mockrepository

type EstimateRepository interface {
	Create(ctx context.Context, estimate *model.Estimate) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Estimate, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.Estimate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type estimateRepository struct {
	db *gorm.DB
}

func NewEstimateRepository(db *gorm.DB) EstimateRepository {
	return &estimateRepository{db: db}
}

func (r *estimateRepository) Create(ctx context.Context, estimate *model.Estimate) error {
	return GetDB(ctx, r.db).Create(estimate).Error
}

func (r *estimateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Estimate, error) {
	var estimate model.Estimate
	if err := GetDB(ctx, r.db).First(&estimate, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &estimate, nil
}

func (r *estimateRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.Estimate, error) {
	var estimates []model.Estimate
	err := GetDB(ctx, r.db).Where("event_id = ?", eventID).Order("date DESC").Find(&estimates).Error
	return estimates, err
}

func (r *estimateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Estimate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
