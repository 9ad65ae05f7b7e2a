package models

import "github.com/shopspring/decimal"

// InventoryRecord is one order header, unique by IID.
type InventoryRecord struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	IID      string `gorm:"column:iid;size:64;index;not null" json:"IID"`
	CID      string `gorm:"column:cid;size:64;index" json:"CID"`
	InDate   string `gorm:"column:indate;size:32" json:"INDATE"`
	OutDate  string `gorm:"column:outdate;size:32" json:"OUTDATE,omitempty"`
	Category string `gorm:"column:category;size:128" json:"CATEGORY,omitempty"`
}

func (InventoryRecord) TableName() string { return "inventory" }

func InventoryFromRow(r Row) InventoryRecord {
	return InventoryRecord{
		IID:      r.Get("IID"),
		CID:      r.Get("CID"),
		InDate:   r.Get("INDATE"),
		OutDate:  r.Get("OUTDATE"),
		Category: r.Get("CATEGORY"),
	}
}

// Status is Completed when the order has an out date.
func (o InventoryRecord) Status() OrderStatus {
	return StatusFromOutDate(o.OutDate)
}

// DetailRecord is one order line. BasePrice keeps the raw source text.
type DetailRecord struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	IID       string `gorm:"column:iid;size:64;index;not null" json:"IID"`
	ItemID    string `gorm:"column:price_table_item_id;size:64;index" json:"price_table_item_id"`
	BasePrice string `gorm:"column:item_baseprice;size:32" json:"item_baseprice"`
	ItemName  string `gorm:"column:item_name;size:255" json:"item_name,omitempty"`
}

func (DetailRecord) TableName() string { return "details" }

func DetailFromRow(r Row) DetailRecord {
	return DetailRecord{
		IID:       r.Get("IID"),
		ItemID:    r.Get("price_table_item_id"),
		BasePrice: r.Get("item_baseprice"),
		ItemName:  r.Get("item_name"),
	}
}

// Amount is the numeric line price, zero when malformed.
func (d DetailRecord) Amount() decimal.Decimal {
	return ParseAmount(d.BasePrice)
}
