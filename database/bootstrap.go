package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/RahulHansraj/FarmToMarket/config"
	"github.com/RahulHansraj/FarmToMarket/entities"
)

// Open connects to the configured store and migrates the schema. The returned
// *gorm.DB carries the database/sql connection pool shared by every handler.
func Open(cfg config.AppConfig) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DriverName() {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		dial = postgres.Open(dsn)
	default:
		dial = sqlite.Open(cfg.DBPath)
	}

	// TranslateError lets repositories see gorm.ErrDuplicatedKey on unique
	// violations instead of driver-specific errors.
	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DriverName(), err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate idempotently creates the relational schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Crop{},
		&entities.Market{},
		&entities.Seller{},
		&entities.MarketPrice{},
		&entities.FarmData{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
