// Package dataset holds the loaded source tables and the sale lines merged
// from them. A Dataset never changes after New returns.
package dataset

import "github.com/diewo77/sales-insights/internal/models"

// Dataset is the read-only context every aggregate is computed over.
type Dataset struct {
	customers []models.Customer
	inventory []models.InventoryRecord
	details   []models.DetailRecord
	pricelist []models.PricelistItem
	lines     []models.SaleLine
	loaded    bool
}

// New copies the four tables and merges them once.
func New(
	customers []models.Customer,
	inventory []models.InventoryRecord,
	details []models.DetailRecord,
	pricelist []models.PricelistItem,
) *Dataset {
	ds := &Dataset{
		customers: append([]models.Customer(nil), customers...),
		inventory: append([]models.InventoryRecord(nil), inventory...),
		details:   append([]models.DetailRecord(nil), details...),
		pricelist: append([]models.PricelistItem(nil), pricelist...),
		loaded:    true,
	}
	ds.lines = Merge(ds.customers, ds.inventory, ds.details, ds.pricelist)
	return ds
}

// Empty is the dataset served before anything has been loaded.
func Empty() *Dataset {
	return &Dataset{}
}

// Loaded is false only for Empty.
func (d *Dataset) Loaded() bool { return d != nil && d.loaded }

// The accessors return the internal slices. Callers must not modify them.

func (d *Dataset) Customers() []models.Customer {
	if d == nil {
		return nil
	}
	return d.customers
}

func (d *Dataset) Inventory() []models.InventoryRecord {
	if d == nil {
		return nil
	}
	return d.inventory
}

func (d *Dataset) Details() []models.DetailRecord {
	if d == nil {
		return nil
	}
	return d.details
}

func (d *Dataset) Pricelist() []models.PricelistItem {
	if d == nil {
		return nil
	}
	return d.pricelist
}

func (d *Dataset) Lines() []models.SaleLine {
	if d == nil {
		return nil
	}
	return d.lines
}
