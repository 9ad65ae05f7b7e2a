package models

import "strings"

// Customer is one row of the customer table, unique by CID.
type Customer struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	CID        string `gorm:"column:cid;size:64;index;not null" json:"CID"`
	FirstName  string `gorm:"column:fname1;size:255" json:"FNAME1"`
	LastName   string `gorm:"column:lname;size:255" json:"LNAME"`
	Email      string `gorm:"column:email;size:255" json:"EMAIL,omitempty"`
	Phone      string `gorm:"column:hphone;size:64" json:"HPHONE,omitempty"`
	City       string `gorm:"column:city;size:128" json:"CITY,omitempty"`
	State      string `gorm:"column:state;size:64" json:"STATE,omitempty"`
	PriceTable string `gorm:"column:pricetbl;size:64" json:"PRICETBL,omitempty"`
	FirstDate  string `gorm:"column:firstdate;size:32" json:"FIRSTDATE,omitempty"`

	// Optional overrides present in some exports.
	Name         string `gorm:"column:customer_name;size:255" json:"Customer_Name,omitempty"`
	CustomerType string `gorm:"column:customer_type;size:64" json:"Customer_Type,omitempty"`
}

func (Customer) TableName() string { return "customers" }

// CustomerFromRow maps a CSV row onto a Customer.
func CustomerFromRow(r Row) Customer {
	return Customer{
		CID:          r.Get("CID"),
		FirstName:    r.Get("FNAME1"),
		LastName:     r.Get("LNAME"),
		Email:        r.Get("EMAIL"),
		Phone:        r.Get("HPHONE"),
		City:         r.Get("CITY"),
		State:        r.Get("STATE"),
		PriceTable:   r.Get("PRICETBL"),
		FirstDate:    r.Get("FIRSTDATE"),
		Name:         r.Get("Customer_Name"),
		CustomerType: r.Get("Customer_Type"),
	}
}

// DisplayName returns Customer_Name when set, else "FNAME1 LNAME".
func (c Customer) DisplayName() string {
	if n := strings.TrimSpace(c.Name); n != "" {
		return n
	}
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// Type returns the customer classification label, falling back to the
// price table code.
func (c Customer) Type() string {
	if t := strings.TrimSpace(c.CustomerType); t != "" {
		return t
	}
	return strings.TrimSpace(c.PriceTable)
}

// IsType reports whether the customer's label equals label, ignoring case.
func (c Customer) IsType(label string) bool {
	return strings.EqualFold(c.Type(), strings.TrimSpace(label))
}
