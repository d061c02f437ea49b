package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentalbilling/internal/model"
)

//go:generate mockgen -source=degressive_rate_repo.go -destination=../mocks/repository/degressive_rate_repo.go -package=mockrepository

type DegressiveRateRepository interface {
	Create(ctx context.Context, rate *model.DegressiveRate) error
	Update(ctx context.Context, rate *model.DegressiveRate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DegressiveRate, error)
	FindDefault(ctx context.Context) (*model.DegressiveRate, error)
	List(ctx context.Context) ([]model.DegressiveRate, error)
	ClearDefault(ctx context.Context, exceptID uuid.UUID) error
}

type degressiveRateRepository struct {
	db *gorm.DB
}

func NewDegressiveRateRepository(db *gorm.DB) DegressiveRateRepository {
	return &degressiveRateRepository{db: db}
}

func tiersByDay(db *gorm.DB) *gorm.DB {
	return db.Order("from_day ASC")
}

func (r *degressiveRateRepository) Create(ctx context.Context, rate *model.DegressiveRate) error {
	return translateError(GetDB(ctx, r.db).Create(rate).Error)
}

// Update replaces the tiers of the rate. Call it inside a transaction.
func (r *degressiveRateRepository) Update(ctx context.Context, rate *model.DegressiveRate) error {
	db := GetDB(ctx, r.db)
	if err := db.Omit("Tiers").Save(rate).Error; err != nil {
		return translateError(err)
	}
	if err := db.Where("degressive_rate_id = ?", rate.ID).Delete(&model.DegressiveRateTier{}).Error; err != nil {
		return err
	}
	if len(rate.Tiers) == 0 {
		return nil
	}
	for i := range rate.Tiers {
		rate.Tiers[i].ID = uuid.Nil
		rate.Tiers[i].DegressiveRateID = rate.ID
	}
	return translateError(db.Create(&rate.Tiers).Error)
}

func (r *degressiveRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.DegressiveRate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *degressiveRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DegressiveRate, error) {
	var rate model.DegressiveRate
	if err := GetDB(ctx, r.db).Preload("Tiers", tiersByDay).First(&rate, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &rate, nil
}

func (r *degressiveRateRepository) FindDefault(ctx context.Context) (*model.DegressiveRate, error) {
	var rate model.DegressiveRate
	if err := GetDB(ctx, r.db).Preload("Tiers", tiersByDay).Where("is_default = ?", true).First(&rate).Error; err != nil {
		return nil, translateError(err)
	}
	return &rate, nil
}

func (r *degressiveRateRepository) List(ctx context.Context) ([]model.DegressiveRate, error) {
	var rates []model.DegressiveRate
	err := GetDB(ctx, r.db).Preload("Tiers", tiersByDay).Order("name ASC").Find(&rates).Error
	return rates, err
}

func (r *degressiveRateRepository) ClearDefault(ctx context.Context, exceptID uuid.UUID) error {
	return GetDB(ctx, r.db).Model(&model.DegressiveRate{}).
		Where("is_default = ? AND id <> ?", true, exceptID).
		Update("is_default", false).Error
}
