package database

import (
	"fmt"

	"github.com/yeremiapane/cafe-finder/models"
	"github.com/yeremiapane/cafe-finder/utils"
	"gorm.io/gorm"
)

// Models lists every table owned by the application, parents first.
func Models() []interface{} {
	return []interface{}{
		&models.Cafe{},
		&models.Review{},
	}
}

// Migrate creates or updates the cafes and reviews tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, m := range Models() {
		if !db.Migrator().HasTable(m) {
			return fmt.Errorf("table for %T missing after migration", m)
		}
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
