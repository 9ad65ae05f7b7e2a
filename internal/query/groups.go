package query

import (
	"github.com/diewo77/sales-insights/internal/analytics"
	"github.com/diewo77/sales-insights/internal/models"
)

// groups is the dispatch table, in precedence order.
var groups = []group{
	{
		name:     "customer",
		keywords: []string{"customer", "client", "buyer"},
		intents: []intent{
			{"big_customers", anyOf("big customer", "large customer", "major customer", "key customer", "important customer"), topCustomersByRevenue},
			{"customer_revenue", allOf(anyOf("revenue", "sales", "spending"), anyOf("by customer", "per customer", "each customer")), customerRevenue},
			{"segmentation", anyOf("segment"), customerSegmentation},
			{"list", anyOf("list", "show", "all", "every"), listCustomers},
			{"type_count", anyOf(analytics.CustomerTypes...), countCustomerType},
			{"count", anyOf("total", "count", "how many", "number"), totalCustomers},
			{"top", anyOf("top", "best", "highest", "biggest", "largest"), topCustomers},
			{"average_spending", allOf(anyOf("average", "avg"), anyOf("spend")), averageCustomerSpending},
			{"recent", anyOf("new", "recent", "latest"), recentCustomers},
		},
		fallback: totalCustomers,
	},
	{
		name:     "order",
		keywords: []string{"order", "ticket", "transaction", "purchase"},
		intents: []intent{
			{"period", mentionsPeriod, periodStats},
			{"pending", anyOf("pending", "unpaid", "processing", "in progress"), backlogOf(models.StatusProcessing)},
			{"completed", anyOf("completed", "paid", "finished", "closed"), backlogOf(models.StatusCompleted)},
			{"status", anyOf("status", "state", "distribution", "breakdown"), statusDistribution},
			{"average_value", anyOf("average", "avg", "mean", "value"), averageOrderValue},
			{"revenue", anyOf("revenue", "sales", "income", "money"), totalRevenue},
			{"count", anyOf("total", "count", "how many", "number"), totalOrders},
		},
		fallback: totalOrders,
	},
	{
		name:     "product",
		keywords: []string{"product", "item", "service", "inventory"},
		intents: []intent{
			{"performance", anyOf("performance", "analysis", "analyze", "analyse"), productPerformance},
			{"price", anyOf("price", "cost", "expensive", "cheap"), productPrice},
			{"category", anyOf("category", "categories"), categoryBreakdown},
			{"top", anyOf("top", "best", "popular", "selling", "highest", "most"), topProducts},
			{"list", anyOf("list", "show", "all", "every"), listProducts},
			{"count", anyOf("total", "count", "how many", "number"), totalProducts},
		},
		fallback: totalProducts,
	},
	{
		name:     "revenue",
		keywords: []string{"revenue", "sales", "profit", "income", "money", "financial", "earnings"},
		intents: []intent{
			{"period", mentionsPeriod, periodStats},
			{"monthly", anyOf("monthly", "by month", "per month", "month"), monthlyRevenue},
			{"daily", anyOf("daily", "by day", "per day", "day"), dailyRevenue},
			{"growth", anyOf("growth", "trend"), revenueGrowth},
			{"category", anyOf("category", "categories"), categoryRevenue},
			{"average", anyOf("average", "avg"), averageOrderValue},
			{"total", anyOf("total"), totalRevenue},
		},
		fallback: totalRevenue,
	},
	{
		name:     "summary",
		keywords: []string{"summary", "overview", "dashboard", "stats", "statistics"},
		fallback: summary,
	},
	{
		name:     "advanced_analytics",
		keywords: []string{"advanced analytics", "advanced analysis", "comprehensive analysis", "detailed analysis"},
		intents: []intent{
			{"segmentation", anyOf("segment"), customerSegmentation},
		},
		fallback: comprehensiveAnalysis,
	},
	{
		name:     "insights",
		keywords: []string{"insight", "analysis", "analytics", "analyze"},
		fallback: insights,
	},
	{
		name:     "period",
		keywords: []string{"today", "yesterday", "this week", "this month", "this year"},
		fallback: periodStats,
	},
	{
		name:     "help",
		keywords: []string{"help", "what can", "how to", "suggestion"},
		fallback: explicitHelp,
	},
}
