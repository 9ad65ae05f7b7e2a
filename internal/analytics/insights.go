package analytics

import "github.com/diewo77/sales-insights/internal/dataset"

// Insights is the business insights bundle.
type Insights struct {
	TotalCustomers      int     `json:"total_customers"`
	TotalOrders         int     `json:"total_orders"`
	TotalRevenue        float64 `json:"total_revenue"`
	AverageOrderValue   float64 `json:"average_order_value"`
	TopCustomer         string  `json:"top_customer"`
	TopProduct          string  `json:"top_product"`
	OrderCompletionRate float64 `json:"order_completion_rate"`
}

func BusinessInsights(ds *dataset.Dataset) Insights {
	return Insights{
		TotalCustomers:      TotalCustomers(ds),
		TotalOrders:         TotalOrders(ds),
		TotalRevenue:        TotalRevenue(ds),
		AverageOrderValue:   AverageOrderValue(ds),
		TopCustomer:         TopCustomersByRevenue(ds, 1).First(),
		TopProduct:          TopProductsByQuantity(ds, 1).First(),
		OrderCompletionRate: CompletionRate(ds),
	}
}

// Summary is the at-a-glance view of the whole dataset.
type Summary struct {
	TotalCustomers      int     `json:"total_customers"`
	TotalOrders         int     `json:"total_orders"`
	TotalOrderItems     int     `json:"total_order_items"`
	TotalProducts       int     `json:"total_products"`
	TotalRevenue        float64 `json:"total_revenue"`
	AvgOrderValue       float64 `json:"avg_order_value"`
	TopCustomerByOrders Ranking `json:"top_customer_by_orders"`
	TopProductBySales   Ranking `json:"top_product_by_sales"`
}

func DataSummary(ds *dataset.Dataset) Summary {
	return Summary{
		TotalCustomers:      TotalCustomers(ds),
		TotalOrders:         TotalOrders(ds),
		TotalOrderItems:     TotalOrderItems(ds),
		TotalProducts:       TotalProducts(ds),
		TotalRevenue:        TotalRevenue(ds),
		AvgOrderValue:       AverageOrderValue(ds),
		TopCustomerByOrders: TopCustomersByOrders(ds, 1),
		TopProductBySales:   TopProductsByQuantity(ds, 1),
	}
}
