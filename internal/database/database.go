package database

import (
	"fmt"

	"github.com/inkpress/core/internal/config"
	"github.com/inkpress/core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a MySQL connection and optionally runs auto-migration.
// TranslateError is enabled so duplicate-key failures surface as
// gorm.ErrDuplicatedKey regardless of driver.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.Database.DSNValue(),
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if autoMigrate {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}
	return db, nil
}

// Migrate runs GORM auto-migration for all content models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TopicModel{},
		&models.ProjectModel{},
		&models.JournalModel{},
		&models.ArticleModel{},
		&models.MediaModel{},
	)
}
