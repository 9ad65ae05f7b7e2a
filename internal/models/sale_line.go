package models

import "github.com/shopspring/decimal"

// SaleLine is one order line joined with its order, customer and catalogue
// entry. It only exists when all three lookups succeeded.
type SaleLine struct {
	IID          string          `json:"IID"`
	CID          string          `json:"CID"`
	ItemID       string          `json:"price_table_item_id"`
	TotalPrice   decimal.Decimal `json:"Total_Price"`
	CustomerName string          `json:"Customer_Name"`
	CustomerType string          `json:"Customer_Type"`
	ProductName  string          `json:"Product_Name"`
	Category     string          `json:"Category"`
	UnitPrice    decimal.Decimal `json:"Unit_Price"`
	OrderDate    string          `json:"Order_Date"`
	Status       OrderStatus     `json:"Status"`
}

// NewSaleLine combines the four joined records.
func NewSaleLine(d DetailRecord, o InventoryRecord, c Customer, p PricelistItem) SaleLine {
	product := d.ItemName
	if product == "" {
		product = p.Name
	}
	category := o.Category
	if category == "" {
		category = DefaultCategory
	}
	return SaleLine{
		IID:          o.IID,
		CID:          c.CID,
		ItemID:       p.ItemID,
		TotalPrice:   d.Amount(),
		CustomerName: c.DisplayName(),
		CustomerType: c.Type(),
		ProductName:  product,
		Category:     category,
		UnitPrice:    p.Price(),
		OrderDate:    o.InDate,
		Status:       o.Status(),
	}
}
