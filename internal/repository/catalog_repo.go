package repository

import (
	"context"

	"gorm.io/gorm"

	"rentalbilling/internal/model"
)

//go:generate mockgen -source=catalog_repo.go -destination=../mocks/repository/catalog_repo.go -package=mockrepository

// CatalogRepository reads categories and parks in display order.
type CatalogRepository interface {
	Categories(ctx context.Context) ([]model.Category, error)
	Parks(ctx context.Context) ([]model.Park, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := GetDB(ctx, r.db).
		Preload("SubCategories", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, name ASC") }).
		Order("position ASC, name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *catalogRepository) Parks(ctx context.Context) ([]model.Park, error) {
	var parks []model.Park
	err := GetDB(ctx, r.db).Order("position ASC, name ASC").Find(&parks).Error
	return parks, err
}
