package analytics

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/diewo77/sales-insights/internal/dataset"
	"github.com/diewo77/sales-insights/internal/models"
)

// Customer classification labels matched against Customer_Type or PRICETBL.
const (
	TypePremium  = "premium"
	TypeStandard = "standard"
)

// CustomerTypes is the fixed set of labels that can be counted.
var CustomerTypes = []string{TypePremium, TypeStandard}

func TotalCustomers(ds *dataset.Dataset) int {
	return len(ds.Customers())
}

// TotalOrders counts distinct IIDs in the order table, including orders
// without any joined line.
func TotalOrders(ds *dataset.Dataset) int {
	seen := make(map[string]struct{})
	for _, o := range ds.Inventory() {
		seen[o.IID] = struct{}{}
	}
	return len(seen)
}

func TotalOrderItems(ds *dataset.Dataset) int {
	return len(ds.Details())
}

func TotalProducts(ds *dataset.Dataset) int {
	return len(ds.Pricelist())
}

func sumLines(lines []models.SaleLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.TotalPrice)
	}
	return total
}

func TotalRevenue(ds *dataset.Dataset) float64 {
	return round2(sumLines(ds.Lines()))
}

// AverageOrderValue divides revenue by the distinct IIDs present in the
// sale lines, not by TotalOrders. It is 0 when there are no lines.
func AverageOrderValue(ds *dataset.Dataset) float64 {
	lines := ds.Lines()
	orders := make(map[string]struct{})
	for _, l := range lines {
		orders[l.IID] = struct{}{}
	}
	if len(orders) == 0 {
		return 0
	}
	return round2(sumLines(lines).Div(decimal.NewFromInt(int64(len(orders)))))
}

// StatusCounts is the order status distribution. Both statuses are always
// present.
type StatusCounts struct {
	Completed  int `json:"Completed"`
	Processing int `json:"Processing"`
}

func (s StatusCounts) Total() int { return s.Completed + s.Processing }

func (s StatusCounts) Of(status models.OrderStatus) int {
	if status == models.StatusCompleted {
		return s.Completed
	}
	return s.Processing
}

func StatusDistribution(ds *dataset.Dataset) StatusCounts {
	var out StatusCounts
	for _, o := range ds.Inventory() {
		if o.Status() == models.StatusCompleted {
			out.Completed++
		} else {
			out.Processing++
		}
	}
	return out
}

// CompletionRate is the share of Completed orders in percent.
func CompletionRate(ds *dataset.Dataset) float64 {
	counts := StatusDistribution(ds)
	if counts.Total() == 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(counts.Completed)).
		Div(decimal.NewFromInt(int64(counts.Total()))).
		Mul(decimal.NewFromInt(100))
	return round2(rate)
}

// OrderBacklog is the number of orders in one status and the revenue of
// their joined lines.
type OrderBacklog struct {
	Status  models.OrderStatus
	Orders  int
	Revenue float64
}

func OrdersWithStatus(ds *dataset.Dataset, status models.OrderStatus) OrderBacklog {
	out := OrderBacklog{Status: status}
	for _, o := range ds.Inventory() {
		if o.Status() == status {
			out.Orders++
		}
	}
	revenue := decimal.Zero
	for _, l := range ds.Lines() {
		if l.Status == status {
			revenue = revenue.Add(l.TotalPrice)
		}
	}
	out.Revenue = round2(revenue)
	return out
}

// CategoryRevenue sums line revenue per category, largest first.
func CategoryRevenue(ds *dataset.Dataset) Ranking {
	return TopN(ds.Lines(), ByCategory, Revenue, 0)
}

// CategoryDistribution counts lines per category, largest first.
func CategoryDistribution(ds *dataset.Dataset) Ranking {
	return TopN(ds.Lines(), ByCategory, Quantity, 0)
}

func CustomerRevenue(ds *dataset.Dataset) Ranking {
	return TopN(ds.Lines(), ByCustomer, Revenue, 0)
}

func normalizeType(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
