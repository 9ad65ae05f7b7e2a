package query

import (
	"strings"

	"github.com/diewo77/sales-insights/internal/analytics"
	"github.com/diewo77/sales-insights/internal/models"
)

// ─── customers ──────────────────────────────────────────────────────────────

func totalCustomers(d *Dispatcher, _ string) Result {
	return Count{Key: "total_customers", Value: analytics.TotalCustomers(d.ds)}
}

func listCustomers(d *Dispatcher, q string) Result {
	for _, t := range analytics.CustomerTypes {
		if strings.Contains(q, t) {
			return CustomerList{Key: t + "_customers", Customers: analytics.CustomersOfType(d.ds, t)}
		}
	}
	return CustomerList{Key: "customers", Customers: d.ds.Customers()}
}

func countCustomerType(d *Dispatcher, q string) Result {
	for _, t := range analytics.CustomerTypes {
		if strings.Contains(q, t) {
			return Count{Key: "total_" + t + "_customers", Value: analytics.CountCustomersOfType(d.ds, t)}
		}
	}
	return totalCustomers(d, q)
}

func topCustomers(d *Dispatcher, q string) Result {
	if strings.Contains(q, "order") && !containsAny(q, "spending", "revenue", "sales") {
		return Ranked{Key: "top_customers_by_orders", Ranking: analytics.TopCustomersByOrders(d.ds, TopCustomers)}
	}
	return topCustomersByRevenue(d, q)
}

func topCustomersByRevenue(d *Dispatcher, _ string) Result {
	return Ranked{Key: "top_customers_by_revenue", Ranking: analytics.TopCustomersByRevenue(d.ds, TopCustomers)}
}

func customerRevenue(d *Dispatcher, _ string) Result {
	return Ranked{Key: "customer_revenue", Ranking: analytics.CustomerRevenue(d.ds)}
}

func averageCustomerSpending(d *Dispatcher, _ string) Result {
	return Amount{Key: "average_customer_spending", Value: analytics.AverageCustomerSpending(d.ds)}
}

func recentCustomers(d *Dispatcher, _ string) Result {
	return CustomerList{Key: "recent_customers", Customers: analytics.RecentCustomers(d.ds, RecentLimit)}
}

// ─── orders ─────────────────────────────────────────────────────────────────

func totalOrders(d *Dispatcher, _ string) Result {
	return Count{Key: "total_orders", Value: analytics.TotalOrders(d.ds)}
}

func backlogOf(status models.OrderStatus) handler {
	return func(d *Dispatcher, _ string) Result {
		return OrderBacklog{analytics.OrdersWithStatus(d.ds, status)}
	}
}

func statusDistribution(d *Dispatcher, _ string) Result {
	return StatusDistribution{Counts: analytics.StatusDistribution(d.ds)}
}

func averageOrderValue(d *Dispatcher, _ string) Result {
	return Amount{Key: "average_order_value", Value: analytics.AverageOrderValue(d.ds)}
}

// ─── products ───────────────────────────────────────────────────────────────

func totalProducts(d *Dispatcher, _ string) Result {
	return Count{Key: "total_products", Value: analytics.TotalProducts(d.ds)}
}

func listProducts(d *Dispatcher, _ string) Result {
	return ProductList{Products: d.ds.Pricelist()}
}

func topProducts(d *Dispatcher, q string) Result {
	if containsAny(q, "revenue", "sales") {
		return Ranked{Key: "top_products_by_revenue", Ranking: analytics.TopProductsByRevenue(d.ds, TopProducts)}
	}
	return Ranked{Key: "top_products_by_quantity", Ranking: analytics.TopProductsByQuantity(d.ds, TopProducts)}
}

func productPrice(d *Dispatcher, q string) Result {
	stats := analytics.LinePriceStats(d.ds)
	switch {
	case containsAny(q, "average", "avg", "mean"):
		return Amount{Key: "average_product_price", Value: stats.Average}
	case containsAny(q, "highest", "most expensive", "max"):
		return Amount{Key: "highest_product_price", Value: stats.Highest}
	case containsAny(q, "lowest", "cheapest", "min"):
		return Amount{Key: "lowest_product_price", Value: stats.Lowest}
	}
	return PriceAnalysis{Stats: stats}
}

func categoryBreakdown(d *Dispatcher, q string) Result {
	if containsAny(q, "revenue", "sales") {
		return categoryRevenue(d, q)
	}
	return Ranked{Key: "category_distribution", Ranking: analytics.CategoryDistribution(d.ds)}
}

// ─── revenue ────────────────────────────────────────────────────────────────

func totalRevenue(d *Dispatcher, _ string) Result {
	return Amount{Key: "total_revenue", Value: analytics.TotalRevenue(d.ds)}
}

func categoryRevenue(d *Dispatcher, _ string) Result {
	return Ranked{Key: "category_revenue", Ranking: analytics.CategoryRevenue(d.ds)}
}

func monthlyRevenue(d *Dispatcher, _ string) Result {
	return Ranked{Key: "monthly_revenue", Ranking: analytics.MonthlyRevenue(d.ds)}
}

func dailyRevenue(d *Dispatcher, _ string) Result {
	return Ranked{Key: "daily_revenue", Ranking: analytics.DailyRevenue(d.ds)}
}

func revenueGrowth(d *Dispatcher, _ string) Result {
	return Amount{Key: "revenue_growth_rate", Value: analytics.RevenueGrowthRate(d.ds)}
}

// ─── composite ──────────────────────────────────────────────────────────────

func summary(d *Dispatcher, _ string) Result {
	return Summary{analytics.DataSummary(d.ds)}
}

func insights(d *Dispatcher, _ string) Result {
	return Insights{Insights: analytics.BusinessInsights(d.ds)}
}

func periodStats(d *Dispatcher, q string) Result {
	p, ok := detectPeriod(q)
	if !ok {
		p = analytics.Today
	}
	return Period{analytics.StatsForPeriod(d.ds, p, d.now())}
}

func comprehensiveAnalysis(d *Dispatcher, _ string) Result {
	return Analytics{Mode: analytics.ModeComprehensive, Analysis: analytics.ComprehensiveAnalysis(d.ds, d.now())}
}

func customerSegmentation(d *Dispatcher, _ string) Result {
	return Analytics{Mode: analytics.ModeSegmentation, Analysis: analytics.CustomerSegmentation(d.ds)}
}

func productPerformance(d *Dispatcher, _ string) Result {
	return Analytics{Mode: analytics.ModeProductPerformance, Analysis: analytics.ProductPerformanceAnalysis(d.ds)}
}
