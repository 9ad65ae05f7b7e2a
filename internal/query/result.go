package query

import (
	"encoding/json"

	"github.com/diewo77/sales-insights/internal/analytics"
	"github.com/diewo77/sales-insights/internal/models"
)

// Kind names a result variant.
type Kind string

const (
	KindCount      Kind = "count"
	KindAmount     Kind = "amount"
	KindRanking    Kind = "ranking"
	KindCustomers  Kind = "customers"
	KindProducts   Kind = "products"
	KindStatus     Kind = "status_distribution"
	KindBacklog    Kind = "order_backlog"
	KindPriceStats Kind = "price_analysis"
	KindSummary    Kind = "summary"
	KindInsights   Kind = "business_insights"
	KindPeriod     Kind = "period"
	KindAnalytics  Kind = "advanced_analytics"
	KindHelp       Kind = "help"
)

// Result is the answer to one query. Each variant marshals to a fixed set
// of keys.
type Result interface {
	Kind() Kind
}

func keyed(key string, v any) ([]byte, error) {
	return json.Marshal(map[string]any{key: v})
}

// Count is a single integer answer such as total_orders.
type Count struct {
	Key   string
	Value int
}

func (Count) Kind() Kind                     { return KindCount }
func (c Count) MarshalJSON() ([]byte, error) { return keyed(c.Key, c.Value) }

// Amount is a single rounded money or percentage answer.
type Amount struct {
	Key   string
	Value float64
}

func (Amount) Kind() Kind                     { return KindAmount }
func (a Amount) MarshalJSON() ([]byte, error) { return keyed(a.Key, a.Value) }

// Ranked is an ordered group-by answer.
type Ranked struct {
	Key     string
	Ranking analytics.Ranking
}

func (Ranked) Kind() Kind                     { return KindRanking }
func (r Ranked) MarshalJSON() ([]byte, error) { return keyed(r.Key, r.Ranking) }

// CustomerList is customers, premium_customers, standard_customers or
// recent_customers.
type CustomerList struct {
	Key       string
	Customers []models.Customer
}

func (CustomerList) Kind() Kind { return KindCustomers }
func (c CustomerList) MarshalJSON() ([]byte, error) {
	if c.Customers == nil {
		return keyed(c.Key, []models.Customer{})
	}
	return keyed(c.Key, c.Customers)
}

type ProductList struct {
	Products []models.PricelistItem
}

func (ProductList) Kind() Kind { return KindProducts }
func (p ProductList) MarshalJSON() ([]byte, error) {
	if p.Products == nil {
		return keyed("products", []models.PricelistItem{})
	}
	return keyed("products", p.Products)
}

type StatusDistribution struct {
	Counts analytics.StatusCounts
}

func (StatusDistribution) Kind() Kind { return KindStatus }
func (s StatusDistribution) MarshalJSON() ([]byte, error) {
	return keyed("order_status_distribution", s.Counts)
}

// OrderBacklog reports pending_* for Processing and completed_* for
// Completed orders.
type OrderBacklog struct {
	analytics.OrderBacklog
}

func (OrderBacklog) Kind() Kind { return KindBacklog }
func (o OrderBacklog) MarshalJSON() ([]byte, error) {
	prefix := "pending"
	if o.Status == models.StatusCompleted {
		prefix = "completed"
	}
	return json.Marshal(map[string]any{
		prefix + "_orders":  o.Orders,
		prefix + "_revenue": o.Revenue,
	})
}

type PriceAnalysis struct {
	Stats analytics.PriceStats
}

func (PriceAnalysis) Kind() Kind { return KindPriceStats }
func (p PriceAnalysis) MarshalJSON() ([]byte, error) {
	return keyed("price_analysis", p.Stats)
}

// Summary marshals flat, with the same keys as the data summary.
type Summary struct {
	analytics.Summary
}

func (Summary) Kind() Kind { return KindSummary }

type Insights struct {
	Insights analytics.Insights `json:"business_insights"`
}

func (Insights) Kind() Kind { return KindInsights }

type Period struct {
	analytics.PeriodStats
}

func (Period) Kind() Kind { return KindPeriod }
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Period    analytics.Period `json:"period"`
		Orders    int              `json:"period_orders"`
		Revenue   float64          `json:"period_revenue"`
		Customers int              `json:"period_customers"`
	}{p.PeriodStats.Period, p.Orders, p.Revenue, p.Customers})
}

// Analytics wraps one advanced analysis answered inline.
type Analytics struct {
	Mode     analytics.Mode `json:"analysis_type"`
	Analysis any            `json:"analysis"`
}

func (Analytics) Kind() Kind { return KindAnalytics }

// Help is returned when no keyword group matched, or when help was asked
// for explicitly.
type Help struct {
	Message          string   `json:"message"`
	Suggestions      []string `json:"suggestions,omitempty"`
	AvailableQueries []string `json:"available_queries,omitempty"`
}

func (Help) Kind() Kind { return KindHelp }
