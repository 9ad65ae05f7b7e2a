// Package db connects to the SQL store holding the source tables, migrates
// its schema and imports CSV exports into it.
package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/diewo77/sales-insights/internal/models"
)

// Models lists every table managed by Migrate.
var Models = []any{
	&models.Customer{},
	&models.InventoryRecord{},
	&models.DetailRecord{},
	&models.PricelistItem{},
}

// Migrate runs AutoMigrate for the four source tables.
func Migrate(db *gorm.DB) error {
	for _, m := range Models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	return nil
}
