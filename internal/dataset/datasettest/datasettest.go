// Package datasettest provides a small, fully known dataset for tests.
//
// Joined lines, in order:
//
//	I1 Shirt 4.50  Alice Martin Laundry     Completed
//	I1 Suit  15.00 Alice Martin Laundry     Completed
//	I2 Suit  15.00 Bob Stone    Dry Clean   Processing
//	I3 Shirt 4.50  Alice Martin Dry Clean   Completed
//	I3 Dress 12.00 Alice Martin Dry Clean   Completed
//	I4 Hem   8.00  Carla Diaz   Alterations Processing
//	I4 Shirt 0     Carla Diaz   Alterations Processing (malformed price)
//
// I5 has an unknown customer, I6 has no lines, and three detail rows
// reference an unknown order, customer or item.
package datasettest

import (
	"github.com/diewo77/sales-insights/internal/dataset"
	"github.com/diewo77/sales-insights/internal/models"
)

func Customers() []models.Customer {
	return []models.Customer{
		{CID: "C1", FirstName: "Alice", LastName: "Martin", CustomerType: "Premium", FirstDate: "2023-01-10"},
		{CID: "C2", FirstName: "Bob", LastName: "Stone", PriceTable: "standard", FirstDate: "2023-06-01"},
		{CID: "C3", FirstName: "Carla", LastName: "Diaz", CustomerType: "premium", FirstDate: "2024-02-15"},
		{CID: "C4", FirstName: "Dan", LastName: "Wu", PriceTable: "STANDARD", FirstDate: "2022-11-20"},
	}
}

func Inventory() []models.InventoryRecord {
	return []models.InventoryRecord{
		{IID: "I1", CID: "C1", InDate: "2024-01-05", OutDate: "2024-01-07", Category: "Laundry"},
		{IID: "I2", CID: "C2", InDate: "2024-01-20"},
		{IID: "I3", CID: "C1", InDate: "2024-02-03", OutDate: "2024-02-05", Category: "Dry Clean"},
		{IID: "I4", CID: "C3", InDate: "2024-02-10", Category: "Alterations"},
		{IID: "I5", CID: "C9", InDate: "2024-02-11", OutDate: "2024-02-12"},
		{IID: "I6", CID: "C2", InDate: "2024-03-01"},
	}
}

func Details() []models.DetailRecord {
	return []models.DetailRecord{
		{IID: "I1", ItemID: "P1", BasePrice: "4.50"},
		{IID: "I1", ItemID: "P2", BasePrice: "15.00"},
		{IID: "I2", ItemID: "P2", BasePrice: "15.00", ItemName: "Suit"},
		{IID: "I3", ItemID: "P1", BasePrice: "4.50"},
		{IID: "I3", ItemID: "P3", BasePrice: "12.00"},
		{IID: "I4", ItemID: "P4", BasePrice: "8.00"},
		{IID: "I4", ItemID: "P1", BasePrice: "bad"},
		{IID: "I5", ItemID: "P1", BasePrice: "4.50"},
		{IID: "I9", ItemID: "P1", BasePrice: "4.50"},
		{IID: "I2", ItemID: "P7", BasePrice: "5.00"},
	}
}

func Pricelist() []models.PricelistItem {
	return []models.PricelistItem{
		{ItemID: "P1", Name: "Shirt", BasePrice: "4.50"},
		{ItemID: "P2", Name: "Suit", BasePrice: "15.00"},
		{ItemID: "P3", Name: "Dress", BasePrice: "12.00"},
		{ItemID: "P4", Name: "Hem", BasePrice: "8.00"},
	}
}

// New returns the merged fixture dataset.
func New() *dataset.Dataset {
	return dataset.New(Customers(), Inventory(), Details(), Pricelist())
}

// Single is the one-line dataset: one Processing order worth 12.50.
func Single() *dataset.Dataset {
	return dataset.New(
		[]models.Customer{{CID: "1", FirstName: "A", LastName: "B", PriceTable: "STANDARD"}},
		[]models.InventoryRecord{{IID: "10", CID: "1", InDate: "2024-01-01"}},
		[]models.DetailRecord{{IID: "10", ItemID: "5", BasePrice: "12.50"}},
		[]models.PricelistItem{{ItemID: "5", Name: "Shirt", BasePrice: "12.50"}},
	)
}
