package repositories

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lockbox/internal/config"
	"lockbox/internal/models"
)

// Open connects to the configured database, applies the pool settings,
// and migrates the schema. The driver is picked from the URL: SQLite
// for file or in-memory DSNs, PostgreSQL otherwise.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.IsSQLite() {
		dialector = sqlite.Open(sqliteDSN(cfg.DatabaseURL))
	} else {
		dialector = postgres.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLife)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Folder{},
		&models.PasswordEntry{},
		&models.Note{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// sqliteDSN makes sure foreign key enforcement is on, otherwise the
// cascade and set-null rules would silently not apply.
func sqliteDSN(url string) string {
	if strings.Contains(url, "_foreign_keys") || strings.Contains(url, "_fk") {
		return url
	}
	if strings.Contains(url, "?") {
		return url + "&_foreign_keys=1"
	}
	return url + "?_foreign_keys=1"
}
