package models

import "time"

type DashboardStats struct {
	VendorsCount    int                `json:"vendors_count"`
	MenuItemsCount  int                `json:"menu_items_count"`
	StockItemsCount int                `json:"stock_items_count"`
	LowStockCount   int                `json:"low_stock_count"`
	TotalStockValue int64              `json:"total_stock_value"`
	LowStockItems   []StockItem        `json:"low_stock_items"`
	RecentActivity  []StockTransaction `json:"recent_activity"`
}

type SalesAnalytics struct {
	TotalSales         int64            `json:"total_sales"`
	TotalOrders        int              `json:"total_orders"`
	ThisMonthSales     int64            `json:"this_month_sales"`
	ThisMonthOrders    int              `json:"this_month_orders"`
	AverageOrderValue  int64            `json:"average_order_value"`
	StatusDistribution map[string]int   `json:"status_distribution"`
	TopVendors         []VendorRevenue  `json:"top_vendors"`
}

type VendorRevenue struct {
	VendorID   int64  `json:"vendor_id"`
	VendorName string `json:"vendor_name"`
	Revenue    int64  `json:"revenue"`
}

type VendorPerformance struct {
	VendorID          int64      `json:"vendor_id"`
	VendorName        string     `json:"vendor_name"`
	TotalOrders       int        `json:"total_orders"`
	TotalAmount       int64      `json:"total_amount"`
	AverageOrderValue int64      `json:"average_order_value"`
	LastOrderDate     *time.Time `json:"last_order_date,omitempty"`
}

type MonthlyTransactionSummary struct {
	Month            string `json:"month"` // YYYY-MM
	TotalIn          int    `json:"total_in"`
	TotalOut         int    `json:"total_out"`
	TotalAdjustments int    `json:"total_adjustments"`
	NetChange        int    `json:"net_change"`
}

type RevenuePoint struct {
	Day     string `json:"day"` // YYYY-MM-DD
	Orders  int    `json:"orders"`
	Revenue int64  `json:"revenue"`
}

type TopItem struct {
	MenuItemID   int64  `json:"menu_item_id"`
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
	Revenue      int64  `json:"revenue"`
}

type PeakHour struct {
	Hour   int `json:"hour"`
	Orders int `json:"orders"`
}
