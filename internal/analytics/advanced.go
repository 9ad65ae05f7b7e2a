package analytics

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diewo77/sales-insights/internal/dataset"
	"github.com/diewo77/sales-insights/internal/models"
)

// ErrUnknownMode is returned for an analysis type outside Modes.
var ErrUnknownMode = errors.New("unknown analysis type")

// Mode names one advanced analysis.
type Mode string

const (
	ModeComprehensive      Mode = "comprehensive"
	ModeSegmentation       Mode = "customer_segmentation"
	ModeProductPerformance Mode = "product_performance"
)

var Modes = []Mode{ModeComprehensive, ModeSegmentation, ModeProductPerformance}

// ParseMode accepts a mode name in any case. Blank means comprehensive.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeComprehensive, nil
	}
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Analyze runs one mode. now anchors the recent-orders window.
func Analyze(ds *dataset.Dataset, mode Mode, now time.Time) (any, error) {
	switch mode {
	case ModeComprehensive:
		return ComprehensiveAnalysis(ds, now), nil
	case ModeSegmentation:
		return CustomerSegmentation(ds), nil
	case ModeProductPerformance:
		return ProductPerformanceAnalysis(ds), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// ─── comprehensive ──────────────────────────────────────────────────────────

type Comprehensive struct {
	BusinessOverview  BusinessOverview  `json:"business_overview"`
	CustomerAnalysis  CustomerAnalysis  `json:"customer_analysis"`
	ProductAnalysis   ProductAnalysis   `json:"product_analysis"`
	FinancialAnalysis FinancialAnalysis `json:"financial_analysis"`
	TimeAnalysis      TimeAnalysis      `json:"time_analysis"`
}

type BusinessOverview struct {
	TotalCustomers      int     `json:"total_customers"`
	TotalOrders         int     `json:"total_orders"`
	TotalRevenue        float64 `json:"total_revenue"`
	AverageOrderValue   float64 `json:"average_order_value"`
	OrderCompletionRate float64 `json:"order_completion_rate"`
}

type CustomerAnalysis struct {
	PremiumCustomers        int     `json:"premium_customers"`
	StandardCustomers       int     `json:"standard_customers"`
	TopCustomerByRevenue    string  `json:"top_customer_by_revenue"`
	TopCustomerRevenue      float64 `json:"top_customer_revenue"`
	AverageCustomerSpending float64 `json:"average_customer_spending"`
}

type ProductAnalysis struct {
	TotalProducts        int     `json:"total_products"`
	TopProductByQuantity string  `json:"top_product_by_quantity"`
	TopProductByRevenue  string  `json:"top_product_by_revenue"`
	CategoryDistribution Ranking `json:"category_distribution"`
	AverageProductPrice  float64 `json:"average_product_price"`
}

type FinancialAnalysis struct {
	TotalRevenue      float64 `json:"total_revenue"`
	PendingRevenue    float64 `json:"pending_revenue"`
	CompletedRevenue  float64 `json:"completed_revenue"`
	RevenueByCategory Ranking `json:"revenue_by_category"`
}

type TimeAnalysis struct {
	RecentOrders int    `json:"recent_orders"`
	OldestOrder  string `json:"oldest_order"`
	NewestOrder  string `json:"newest_order"`
}

// ComprehensiveAnalysis counts recent orders from January 1st of now's year.
func ComprehensiveAnalysis(ds *dataset.Dataset, now time.Time) Comprehensive {
	topCustomer := TopCustomersByRevenue(ds, 1)
	var topCustomerRevenue float64
	if len(topCustomer) > 0 {
		topCustomerRevenue = topCustomer[0].Value
	}
	oldest, newest := orderDateRange(ds)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)

	return Comprehensive{
		BusinessOverview: BusinessOverview{
			TotalCustomers:      TotalCustomers(ds),
			TotalOrders:         TotalOrders(ds),
			TotalRevenue:        TotalRevenue(ds),
			AverageOrderValue:   AverageOrderValue(ds),
			OrderCompletionRate: CompletionRate(ds),
		},
		CustomerAnalysis: CustomerAnalysis{
			PremiumCustomers:        CountCustomersOfType(ds, TypePremium),
			StandardCustomers:       CountCustomersOfType(ds, TypeStandard),
			TopCustomerByRevenue:    topCustomer.First(),
			TopCustomerRevenue:      topCustomerRevenue,
			AverageCustomerSpending: AverageCustomerSpending(ds),
		},
		ProductAnalysis: ProductAnalysis{
			TotalProducts:        TotalProducts(ds),
			TopProductByQuantity: TopProductsByQuantity(ds, 1).First(),
			TopProductByRevenue:  TopProductsByRevenue(ds, 1).First(),
			CategoryDistribution: CategoryDistribution(ds),
			AverageProductPrice:  LinePriceStats(ds).Average,
		},
		FinancialAnalysis: FinancialAnalysis{
			TotalRevenue:      TotalRevenue(ds),
			PendingRevenue:    OrdersWithStatus(ds, models.StatusProcessing).Revenue,
			CompletedRevenue:  OrdersWithStatus(ds, models.StatusCompleted).Revenue,
			RevenueByCategory: CategoryRevenue(ds),
		},
		TimeAnalysis: TimeAnalysis{
			RecentOrders: ordersSince(ds, yearStart),
			OldestOrder:  oldest,
			NewestOrder:  newest,
		},
	}
}

// ─── customer segmentation ──────────────────────────────────────────────────

// CustomerMetrics describes one customer's line activity.
type CustomerMetrics struct {
	TotalSpent   float64 `json:"total_spent"`
	TotalItems   int     `json:"total_items"`
	AvgItemPrice float64 `json:"avg_item_price"`
	UniqueOrders int     `json:"unique_orders"`
}

type Segment struct {
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
	AvgSpending float64 `json:"avg_spending"`
}

type HighValueSegment struct {
	Segment
	TopCustomers Ordered[CustomerMetrics] `json:"top_customers"`
}

type Segments struct {
	High   HighValueSegment `json:"high_value_customers"`
	Medium Segment          `json:"medium_value_customers"`
	Low    Segment          `json:"low_value_customers"`
}

type Segmentation struct {
	CustomerSegments Segments `json:"customer_segments"`
}

// Top customers listed for the high value segment.
const segmentTopCustomers = 5

// CustomerSegmentation buckets customers by total spend: high above the
// 80th percentile, medium above the 40th, low at or below the 40th.
func CustomerSegmentation(ds *dataset.Dataset) Segmentation {
	groups := groupLines(ds.Lines(), ByCustomer)
	sortGroups(groups, Revenue)

	spent := make([]float64, len(groups))
	for i, g := range groups {
		spent[i] = g.sum.InexactFloat64()
	}
	q40, q80 := quantile(spent, 0.4), quantile(spent, 0.8)

	var high, medium, low []*group
	for i, g := range groups {
		switch {
		case spent[i] > q80:
			high = append(high, g)
		case spent[i] > q40:
			medium = append(medium, g)
		default:
			low = append(low, g)
		}
	}

	top := high
	if len(top) > segmentTopCustomers {
		top = top[:segmentTopCustomers]
	}
	topCustomers := make(Ordered[CustomerMetrics], len(top))
	for i, g := range top {
		topCustomers[i] = Pair[CustomerMetrics]{Key: g.key, Value: CustomerMetrics{
			TotalSpent:   round2(g.sum),
			TotalItems:   g.lines,
			AvgItemPrice: round2(g.sum.Div(decimal.NewFromInt(int64(g.lines)))),
			UniqueOrders: len(g.orders),
		}}
	}

	return Segmentation{CustomerSegments: Segments{
		High:   HighValueSegment{Segment: segmentOf(high, len(groups)), TopCustomers: topCustomers},
		Medium: segmentOf(medium, len(groups)),
		Low:    segmentOf(low, len(groups)),
	}}
}

func segmentOf(members []*group, total int) Segment {
	if len(members) == 0 || total == 0 {
		return Segment{}
	}
	sum := decimal.Zero
	for _, g := range members {
		sum = sum.Add(g.sum)
	}
	pct := decimal.NewFromInt(int64(len(members))).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100))
	return Segment{
		Count:       len(members),
		Percentage:  round2(pct),
		AvgSpending: round2(sum.Div(decimal.NewFromInt(int64(len(members))))),
	}
}

// quantile uses linear interpolation between closest ranks.
func quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// ─── product performance ────────────────────────────────────────────────────

const performanceTopN = 10

type ProductPerformanceDetail struct {
	TopProductsByRevenue  Ordered[ProductMetrics] `json:"top_products_by_revenue"`
	TopProductsByQuantity Ranking                 `json:"top_products_by_quantity"`
	CategoryPerformance   Ranking                 `json:"category_performance"`
	PriceAnalysis         PriceStats              `json:"price_analysis"`
}

type ProductPerformance struct {
	ProductPerformance ProductPerformanceDetail `json:"product_performance"`
}

func ProductPerformanceAnalysis(ds *dataset.Dataset) ProductPerformance {
	return ProductPerformance{ProductPerformance: ProductPerformanceDetail{
		TopProductsByRevenue:  ProductsByRevenue(ds, performanceTopN),
		TopProductsByQuantity: TopProductsByQuantity(ds, performanceTopN),
		CategoryPerformance:   CategoryRevenue(ds),
		PriceAnalysis:         LinePriceStats(ds),
	}}
}
