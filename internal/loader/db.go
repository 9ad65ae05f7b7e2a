package loader

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/diewo77/sales-insights/internal/models"
)

// DBSource reads the tables written by db.Import, in insertion order.
type DBSource struct {
	db *gorm.DB
}

func NewDBSource(db *gorm.DB) *DBSource {
	return &DBSource{db: db}
}

func (s *DBSource) Name() string { return "db:" + s.db.Dialector.Name() }

func (s *DBSource) Customers(ctx context.Context) ([]models.Customer, error) {
	return findAll[models.Customer](ctx, s.db)
}

func (s *DBSource) Inventory(ctx context.Context) ([]models.InventoryRecord, error) {
	return findAll[models.InventoryRecord](ctx, s.db)
}

func (s *DBSource) Details(ctx context.Context) ([]models.DetailRecord, error) {
	return findAll[models.DetailRecord](ctx, s.db)
}

func (s *DBSource) Pricelist(ctx context.Context) ([]models.PricelistItem, error) {
	return findAll[models.PricelistItem](ctx, s.db)
}

func findAll[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	var out []T
	if err := db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Open returns the source named by kind: "csv" reads dir, "db" reads db.
func Open(kind, dir string, db *gorm.DB) (Source, error) {
	switch kind {
	case "csv":
		return NewCSVSource(dir), nil
	case "db":
		if db == nil {
			return nil, fmt.Errorf("loader: db source requires a database connection")
		}
		return NewDBSource(db), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
}
