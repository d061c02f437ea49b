package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rentalbilling/internal/model"
)

// Models lists every table managed by AutoMigrate, parents first.
func Models() []any {
	return []any{
		&model.Category{},
		&model.SubCategory{},
		&model.Park{},
		&model.Material{},
		&model.MaterialUnit{},
		&model.Beneficiary{},
		&model.DegressiveRate{},
		&model.DegressiveRateTier{},
		&model.Tax{},
		&model.TaxComponent{},
		&model.Event{},
		&model.EventBeneficiary{},
		&model.EventMaterial{},
		&model.Bill{},
		&model.Estimate{},
		&model.BillSequence{},
		&model.AuditLog{},
	}
}

// NewConnection opens a GORM connection pool and migrates the schema.
func NewConnection(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		// Keep serving: an existing schema may still be usable.
		logger.Warn("failed to auto-migrate models", zap.Error(err))
	}

	return db, nil
}
