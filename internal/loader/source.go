// Package loader reads the four source tables from a CSV directory or a
// database and builds the dataset from them.
package loader

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/diewo77/sales-insights/internal/dataset"
	"github.com/diewo77/sales-insights/internal/models"
)

// Table names, also used as log fields and metric labels.
const (
	TableCustomers = "customers"
	TableInventory = "inventory"
	TableDetails   = "details"
	TablePricelist = "pricelist"
)

var Tables = []string{TableCustomers, TableInventory, TableDetails, TablePricelist}

// ErrUnknownSource is returned for a source kind other than csv or db.
var ErrUnknownSource = errors.New("unknown data source")

// Source produces the raw records of each table.
type Source interface {
	Name() string
	Customers(ctx context.Context) ([]models.Customer, error)
	Inventory(ctx context.Context) ([]models.InventoryRecord, error)
	Details(ctx context.Context) ([]models.DetailRecord, error)
	Pricelist(ctx context.Context) ([]models.PricelistItem, error)
}

// Report describes one LoadAll run.
type Report struct {
	Source string           `json:"source"`
	Rows   map[string]int   `json:"rows"`
	Failed map[string]error `json:"-"`
	Lines  int              `json:"sale_lines"`
}

// FailedTables lists the tables that could not be read, in load order.
func (r Report) FailedTables() []string {
	var out []string
	for _, t := range Tables {
		if _, ok := r.Failed[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// LoadAll reads the four tables one after the other and merges them. A
// table that fails to load is logged and treated as empty, so the result is
// always a usable dataset.
func LoadAll(ctx context.Context, src Source, log *zap.Logger) (*dataset.Dataset, Report) {
	if log == nil {
		log = zap.NewNop()
	}
	rep := Report{Source: src.Name(), Rows: map[string]int{}, Failed: map[string]error{}}

	customers := load(ctx, rep, TableCustomers, src.Customers, log)
	inventory := load(ctx, rep, TableInventory, src.Inventory, log)
	details := load(ctx, rep, TableDetails, src.Details, log)
	pricelist := load(ctx, rep, TablePricelist, src.Pricelist, log)

	ds := dataset.New(customers, inventory, details, pricelist)
	rep.Lines = len(ds.Lines())
	log.Info("dataset loaded",
		zap.String("source", rep.Source),
		zap.Int("customers", len(customers)),
		zap.Int("orders", len(inventory)),
		zap.Int("details", len(details)),
		zap.Int("products", len(pricelist)),
		zap.Int("sale_lines", rep.Lines),
	)
	return ds, rep
}

func load[T any](ctx context.Context, rep Report, table string, fetch func(context.Context) ([]T, error), log *zap.Logger) []T {
	rows, err := fetch(ctx)
	if err != nil {
		rep.Failed[table] = err
		rep.Rows[table] = 0
		log.Warn("table load failed, using empty table", zap.String("table", table), zap.Error(err))
		return nil
	}
	rep.Rows[table] = len(rows)
	return rows
}
