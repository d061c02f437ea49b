package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentalbilling/internal/model"
)

//go:generate mockgen -source=bill_repo.go -destination=../mocks/repository/bill_repo.go -package=mockrepository

type BillRepository interface {
	NextSequence(ctx context.Context, year int) (int, error)
	Create(ctx context.Context, bill *model.Bill) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Bill, error)
	FindLatestForEvent(ctx context.Context, eventID uuid.UUID) (*model.Bill, error)
	List(ctx context.Context, page, limit int) ([]model.Bill, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{db: db}
}

// NextSequence reserves the next bill sequence of the year. The sequence row stays locked
// until the surrounding transaction ends, so it must be called inside RunInTx.
func (r *billRepository) NextSequence(ctx context.Context, year int) (int, error) {
	db := GetDB(ctx, r.db)

	var lastBilled int
	if err := db.Model(&model.Bill{}).Where("year = ?", year).
		Select("COALESCE(MAX(sequence), 0)").Scan(&lastBilled).Error; err != nil {
		return 0, err
	}
	seed := model.BillSequence{Year: year, LastValue: lastBilled}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, err
	}

	var seq model.BillSequence
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&seq, "year = ?", year).Error; err != nil {
		return 0, translateError(err)
	}
	next := seq.LastValue + 1
	if err := db.Model(&model.BillSequence{}).Where("year = ?", year).Update("last_value", next).Error; err != nil {
		return 0, err
	}
	return next, nil
}

func (r *billRepository) Create(ctx context.Context, bill *model.Bill) error {
	return translateError(GetDB(ctx, r.db).Create(bill).Error)
}

func (r *billRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Bill, error) {
	var bill model.Bill
	if err := GetDB(ctx, r.db).First(&bill, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &bill, nil
}

func (r *billRepository) FindLatestForEvent(ctx context.Context, eventID uuid.UUID) (*model.Bill, error) {
	var bill model.Bill
	err := GetDB(ctx, r.db).Where("event_id = ?", eventID).
		Order("date DESC, sequence DESC").First(&bill).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &bill, nil
}

func (r *billRepository) List(ctx context.Context, page, limit int) ([]model.Bill, int64, error) {
	var bills []model.Bill
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Bill{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("year DESC, sequence DESC").Offset(offset).Limit(limit).Find(&bills).Error; err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}

func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Bill{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
