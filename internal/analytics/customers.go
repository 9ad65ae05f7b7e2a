package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/diewo77/sales-insights/internal/dataset"
	"github.com/diewo77/sales-insights/internal/models"
)

// IsKnownType reports whether label belongs to CustomerTypes.
func IsKnownType(label string) bool {
	label = normalizeType(label)
	for _, t := range CustomerTypes {
		if t == label {
			return true
		}
	}
	return false
}

// CustomersOfType returns customers whose label equals the given one.
// Labels outside CustomerTypes never match.
func CustomersOfType(ds *dataset.Dataset, label string) []models.Customer {
	if !IsKnownType(label) {
		return nil
	}
	var out []models.Customer
	for _, c := range ds.Customers() {
		if c.IsType(label) {
			out = append(out, c)
		}
	}
	return out
}

func CountCustomersOfType(ds *dataset.Dataset, label string) int {
	return len(CustomersOfType(ds, label))
}

// RecentCustomers returns up to n customers by FIRSTDATE, newest first.
// Customers without a readable date sort last.
func RecentCustomers(ds *dataset.Dataset, n int) []models.Customer {
	out := append([]models.Customer(nil), ds.Customers()...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, oki := models.ParseDate(out[i].FirstDate)
		tj, okj := models.ParseDate(out[j].FirstDate)
		if oki != okj {
			return oki
		}
		return ti.After(tj)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// AverageCustomerSpending is the mean revenue of customers with at least
// one sale line.
func AverageCustomerSpending(ds *dataset.Dataset) float64 {
	groups := groupLines(ds.Lines(), ByCustomer)
	if len(groups) == 0 {
		return 0
	}
	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.sum)
	}
	return round2(total.Div(decimal.NewFromInt(int64(len(groups)))))
}

// TopCustomersByRevenue ranks customers on summed line revenue.
func TopCustomersByRevenue(ds *dataset.Dataset, n int) Ranking {
	return TopN(ds.Lines(), ByCustomer, Revenue, n)
}

// TopCustomersByOrders ranks customers on distinct orders.
func TopCustomersByOrders(ds *dataset.Dataset, n int) Ranking {
	return TopN(ds.Lines(), ByCustomer, Orders, n)
}

// CustomerSpend is one row of the customer spending report.
type CustomerSpend struct {
	Name       string
	Type       string
	TotalSpent float64
	Items      int
}

// CustomerSpending lists every customer with sale lines, biggest spender
// first. Type is taken from the customer's first line.
func CustomerSpending(ds *dataset.Dataset) []CustomerSpend {
	types := make(map[string]string)
	for _, l := range ds.Lines() {
		if _, ok := types[l.CustomerName]; !ok {
			types[l.CustomerName] = l.CustomerType
		}
	}
	groups := groupLines(ds.Lines(), ByCustomer)
	sortGroups(groups, Revenue)
	out := make([]CustomerSpend, len(groups))
	for i, g := range groups {
		out[i] = CustomerSpend{Name: g.key, Type: types[g.key], TotalSpent: round2(g.sum), Items: g.lines}
	}
	return out
}
