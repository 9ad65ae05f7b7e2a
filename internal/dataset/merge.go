package dataset

import "github.com/diewo77/sales-insights/internal/models"

// Merge joins every detail row to its order, the order's customer and the
// catalogue entry. Rows with any unresolved key are dropped. Output order
// follows details. When a key appears more than once, the first record wins.
func Merge(
	customers []models.Customer,
	inventory []models.InventoryRecord,
	details []models.DetailRecord,
	pricelist []models.PricelistItem,
) []models.SaleLine {
	orders := make(map[string]models.InventoryRecord, len(inventory))
	for _, o := range inventory {
		if _, seen := orders[o.IID]; !seen {
			orders[o.IID] = o
		}
	}
	byCID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		if _, seen := byCID[c.CID]; !seen {
			byCID[c.CID] = c
		}
	}
	items := make(map[string]models.PricelistItem, len(pricelist))
	for _, p := range pricelist {
		if _, seen := items[p.ItemID]; !seen {
			items[p.ItemID] = p
		}
	}

	lines := make([]models.SaleLine, 0, len(details))
	for _, d := range details {
		o, ok := orders[d.IID]
		if !ok {
			continue
		}
		c, ok := byCID[o.CID]
		if !ok {
			continue
		}
		p, ok := items[d.ItemID]
		if !ok {
			continue
		}
		lines = append(lines, models.NewSaleLine(d, o, c, p))
	}
	return lines
}
