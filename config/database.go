package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/borsatogiordano/daily-diet-api/models"
)

// Connect opens the database and migrates the schema. TranslateError maps
// driver unique-violation errors onto gorm.ErrDuplicatedKey, which the
// user service relies on for duplicate names.
func Connect(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Meal{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}
