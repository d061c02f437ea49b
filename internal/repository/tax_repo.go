package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentalbilling/internal/model"
)

//go:generate mockgen -source=tax_repo.go -destination=../mocks/repository/tax_repo.go -package=mockrepository

type TaxRepository interface {
	Create(ctx context.Context, tax *model.Tax) error
	Update(ctx context.Context, tax *model.Tax) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Tax, error)
	FindDefault(ctx context.Context) (*model.Tax, error)
	List(ctx context.Context) ([]model.Tax, error)
	ClearDefault(ctx context.Context, exceptID uuid.UUID) error
}

type taxRepository struct {
	db *gorm.DB
}

func NewTaxRepository(db *gorm.DB) TaxRepository {
	return &taxRepository{db: db}
}

func (r *taxRepository) Create(ctx context.Context, tax *model.Tax) error {
	return translateError(GetDB(ctx, r.db).Create(tax).Error)
}

// Update replaces the components of the tax. Call it inside a transaction.
func (r *taxRepository) Update(ctx context.Context, tax *model.Tax) error {
	db := GetDB(ctx, r.db)
	if err := db.Omit("Components").Save(tax).Error; err != nil {
		return translateError(err)
	}
	if err := db.Where("tax_id = ?", tax.ID).Delete(&model.TaxComponent{}).Error; err != nil {
		return err
	}
	if len(tax.Components) == 0 {
		return nil
	}
	for i := range tax.Components {
		tax.Components[i].ID = uuid.Nil
		tax.Components[i].TaxID = tax.ID
		tax.Components[i].Position = i
	}
	return db.Create(&tax.Components).Error
}

func (r *taxRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Tax{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *taxRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Tax, error) {
	var tax model.Tax
	if err := GetDB(ctx, r.db).Preload("Components", byPosition).First(&tax, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &tax, nil
}

func (r *taxRepository) FindDefault(ctx context.Context) (*model.Tax, error) {
	var tax model.Tax
	if err := GetDB(ctx, r.db).Preload("Components", byPosition).Where("is_default = ?", true).First(&tax).Error; err != nil {
		return nil, translateError(err)
	}
	return &tax, nil
}

func (r *taxRepository) List(ctx context.Context) ([]model.Tax, error) {
	var taxes []model.Tax
	err := GetDB(ctx, r.db).Preload("Components", byPosition).Order("name ASC").Find(&taxes).Error
	return taxes, err
}

func (r *taxRepository) ClearDefault(ctx context.Context, exceptID uuid.UUID) error {
	return GetDB(ctx, r.db).Model(&model.Tax{}).
		Where("is_default = ? AND id <> ?", true, exceptID).
		Update("is_default", false).Error
}
