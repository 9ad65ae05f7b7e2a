package models

import "github.com/shopspring/decimal"

// PricelistItem is one catalogue entry, unique by item_id.
type PricelistItem struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ItemID    string `gorm:"column:item_id;size:64;index;not null" json:"item_id"`
	Name      string `gorm:"column:name;size:255" json:"name"`
	BasePrice string `gorm:"column:baseprice;size:32" json:"baseprice"`
}

func (PricelistItem) TableName() string { return "pricelist" }

func PricelistFromRow(r Row) PricelistItem {
	return PricelistItem{
		ItemID:    r.Get("item_id"),
		Name:      r.Get("name"),
		BasePrice: r.Get("baseprice"),
	}
}

func (p PricelistItem) Price() decimal.Decimal {
	return ParseAmount(p.BasePrice)
}
