package database

import (
	"fmt"

	"github.com/TemiKayode/wumikay-ventures/internal/config"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logger.L().Info("connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.CompanySettings{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.L().Info("database migrations completed")
	return nil
}

// SeedDefaultData seeds the company settings row and the sample catalog
// used on a fresh install.
func SeedDefaultData(db *gorm.DB) error {
	var settingsCount int64
	if err := db.Model(&entity.CompanySettings{}).Count(&settingsCount).Error; err != nil {
		return err
	}
	if settingsCount == 0 {
		if err := db.Create(entity.DefaultCompanySettings()).Error; err != nil {
			return fmt.Errorf("failed to seed company settings: %w", err)
		}
	}

	var productCount int64
	if err := db.Model(&entity.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount == 0 {
		coke := "COCA001"
		fanta := "FANTA001"
		samples := []entity.Product{
			{
				Name:              "Coca-Cola PET Bottle",
				Description:       "PET Coke",
				Price:             445000,
				Quantity:          100,
				Category:          "Beverages",
				Barcode:           &coke,
				LowStockThreshold: 10,
				CostPrice:         400000,
				SellingPrice:      445000,
				Brand:             "Coca-Cola",
			},
			{
				Name:              "Fanta Orange PET Bottle",
				Description:       "PET Fanta",
				Price:             445000,
				Quantity:          100,
				Category:          "Beverages",
				Barcode:           &fanta,
				LowStockThreshold: 10,
				CostPrice:         400000,
				SellingPrice:      445000,
				Brand:             "Fanta",
			},
		}
		if err := db.Create(&samples).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	}

	logger.L().Info("default data seeding completed")
	return nil
}
