package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sreeharigs/organicproduct/internal/model"
	"github.com/sreeharigs/organicproduct/pkg/config"
)

var db *gorm.DB

// InitDB initializes the database connection with configuration, runs
// migrations and seeds the default rows.
func InitDB(cfg *config.Config) error {
	var err error

	dsn := cfg.DB.GetDSN()

	pgConfig := postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	db, err = gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(cfg.DB.LogLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Set connection pool settings from config
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	// Run migrations. ApprovedCertificate must come before Seller, and
	// Seller before Product, so foreign keys resolve.
	if err := db.AutoMigrate(
		&model.ApprovedCertificate{},
		&model.Buyer{},
		&model.Seller{},
		&model.Product{},
		&model.Order{},
		&model.Feedback{},
		&model.WishlistEntry{},
		&model.AdminUser{},
	); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	if err := seed(db, &cfg.Seed); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}
