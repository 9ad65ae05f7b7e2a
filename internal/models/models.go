// Package models holds the source records loaded from CSV or SQL and the
// denormalized SaleLine built from them.
package models

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCategory is used when an order carries no category.
const DefaultCategory = "Dry Clean"

// OrderStatus is derived from the presence of an order's out date.
type OrderStatus string

const (
	StatusCompleted  OrderStatus = "Completed"
	StatusProcessing OrderStatus = "Processing"
)

// Statuses lists every status in reporting order.
var Statuses = []OrderStatus{StatusCompleted, StatusProcessing}

// StatusFromOutDate returns Completed when outDate is non-blank.
func StatusFromOutDate(outDate string) OrderStatus {
	if strings.TrimSpace(outDate) != "" {
		return StatusCompleted
	}
	return StatusProcessing
}

// ParseAmount converts a raw price text into a decimal.
// Blank, malformed, negative and values too large for a float64 all yield
// zero.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	if f, _ := d.Float64(); math.IsInf(f, 0) {
		return decimal.Zero
	}
	return d
}

// Row is one source record keyed by column header.
type Row map[string]string

// Get returns the first non-blank value among keys, trimmed.
func (r Row) Get(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(r[k]); v != "" {
			return v
		}
	}
	return ""
}
