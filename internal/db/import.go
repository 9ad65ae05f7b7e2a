package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/diewo77/sales-insights/internal/loader"
)

const importBatchSize = 500

// ImportCounts reports the rows written per table.
type ImportCounts struct {
	Customers int `json:"customers"`
	Inventory int `json:"inventory"`
	Details   int `json:"details"`
	Pricelist int `json:"pricelist"`
}

// Import replaces the content of the four tables with the records of src.
// All tables are written in one transaction; any read or write failure
// leaves the database untouched.
func Import(ctx context.Context, db *gorm.DB, src loader.Source) (ImportCounts, error) {
	var counts ImportCounts

	customers, err := src.Customers(ctx)
	if err != nil {
		return counts, fmt.Errorf("read customers: %w", err)
	}
	inventory, err := src.Inventory(ctx)
	if err != nil {
		return counts, fmt.Errorf("read inventory: %w", err)
	}
	details, err := src.Details(ctx)
	if err != nil {
		return counts, fmt.Errorf("read details: %w", err)
	}
	pricelist, err := src.Pricelist(ctx)
	if err != nil {
		return counts, fmt.Errorf("read pricelist: %w", err)
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range Models {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return fmt.Errorf("clear %T: %w", m, err)
			}
		}
		if err := insert(tx, customers); err != nil {
			return fmt.Errorf("insert customers: %w", err)
		}
		if err := insert(tx, inventory); err != nil {
			return fmt.Errorf("insert inventory: %w", err)
		}
		if err := insert(tx, details); err != nil {
			return fmt.Errorf("insert details: %w", err)
		}
		if err := insert(tx, pricelist); err != nil {
			return fmt.Errorf("insert pricelist: %w", err)
		}
		return nil
	})
	if err != nil {
		return ImportCounts{}, err
	}

	counts = ImportCounts{
		Customers: len(customers),
		Inventory: len(inventory),
		Details:   len(details),
		Pricelist: len(pricelist),
	}
	return counts, nil
}

func insert[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(&rows, importBatchSize).Error
}
