package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/diewo77/sales-insights/internal/dataset"
	"github.com/diewo77/sales-insights/internal/models"
)

func TopProductsByRevenue(ds *dataset.Dataset, n int) Ranking {
	return TopN(ds.Lines(), ByProduct, Revenue, n)
}

func TopProductsByQuantity(ds *dataset.Dataset, n int) Ranking {
	return TopN(ds.Lines(), ByProduct, Quantity, n)
}

// PriceStats summarizes line prices.
type PriceStats struct {
	Highest float64 `json:"highest_price"`
	Lowest  float64 `json:"lowest_price"`
	Average float64 `json:"average_price"`
	Median  float64 `json:"median_price"`
}

// LinePriceStats computes min, max, mean and median of TotalPrice. All
// fields are 0 when there are no lines.
func LinePriceStats(ds *dataset.Dataset) PriceStats {
	prices := linePrices(ds.Lines())
	if len(prices) == 0 {
		return PriceStats{}
	}
	sum := decimal.Sum(prices[0], prices[1:]...)
	n := decimal.NewFromInt(int64(len(prices)))
	return PriceStats{
		Highest: round2(prices[len(prices)-1]),
		Lowest:  round2(prices[0]),
		Average: round2(sum.Div(n)),
		Median:  round2(median(prices)),
	}
}

// linePrices returns the sorted line prices.
func linePrices(lines []models.SaleLine) []decimal.Decimal {
	prices := make([]decimal.Decimal, len(lines))
	for i, l := range lines {
		prices[i] = l.TotalPrice
	}
	sort.Slice(prices, func(i, j int) bool { return prices[i].LessThan(prices[j]) })
	return prices
}

// median expects sorted input with at least one value.
func median(sorted []decimal.Decimal) decimal.Decimal {
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
}

// ProductMetrics describes one product's line activity.
type ProductMetrics struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalQuantity int     `json:"total_quantity"`
	AvgPrice      float64 `json:"avg_price"`
	UniqueOrders  int     `json:"unique_orders"`
}

// ProductsByRevenue returns per-product metrics ranked by revenue.
func ProductsByRevenue(ds *dataset.Dataset, n int) Ordered[ProductMetrics] {
	groups := groupLines(ds.Lines(), ByProduct)
	sortGroups(groups, Revenue)
	if n > 0 && len(groups) > n {
		groups = groups[:n]
	}
	out := make(Ordered[ProductMetrics], len(groups))
	for i, g := range groups {
		out[i] = Pair[ProductMetrics]{Key: g.key, Value: ProductMetrics{
			TotalRevenue:  round2(g.sum),
			TotalQuantity: g.lines,
			AvgPrice:      round2(g.sum.Div(decimal.NewFromInt(int64(g.lines)))),
			UniqueOrders:  len(g.orders),
		}}
	}
	return out
}
