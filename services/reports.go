package services

import (
	"context"

	"vendorhub/db"
	"vendorhub/models"
)

// GetDashboardStats aggregates the admin dashboard numbers.
func GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var s models.DashboardStats
	err := db.Pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM vendors WHERE is_active = true),
			(SELECT COUNT(*) FROM menu_items),
			(SELECT COUNT(*) FROM stock),
			(SELECT COUNT(*) FROM stock WHERE current_stock <= reorder_level),
			(SELECT COALESCE(SUM(current_stock::bigint * unit_cost), 0) FROM stock)`,
	).Scan(&s.VendorsCount, &s.MenuItemsCount, &s.StockItemsCount, &s.LowStockCount, &s.TotalStockValue)
	if err != nil {
		return nil, err
	}
	if s.LowStockItems, err = LowStockItems(ctx, 0); err != nil {
		return nil, err
	}
	if s.RecentActivity, err = ListStockTransactions(ctx, 0, 10); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSalesAnalytics aggregates order revenue figures. Cancelled orders are
// excluded from revenue but kept in the status distribution.
func GetSalesAnalytics(ctx context.Context) (*models.SalesAnalytics, error) {
	var a models.SalesAnalytics
	err := db.Pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(grand_total) FILTER (WHERE status <> 'cancelled'), 0)::bigint,
			COUNT(*) FILTER (WHERE status <> 'cancelled')::int,
			COALESCE(SUM(grand_total) FILTER (WHERE status <> 'cancelled' AND created_at >= date_trunc('month', now())), 0)::bigint,
			COUNT(*) FILTER (WHERE status <> 'cancelled' AND created_at >= date_trunc('month', now()))::int
		FROM orders`,
	).Scan(&a.TotalSales, &a.TotalOrders, &a.ThisMonthSales, &a.ThisMonthOrders)
	if err != nil {
		return nil, err
	}
	if a.TotalOrders > 0 {
		a.AverageOrderValue = a.TotalSales / int64(a.TotalOrders)
	}

	a.StatusDistribution = map[string]int{}
	rows, err := db.Pool.Query(ctx, `SELECT status, COUNT(*)::int FROM orders GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		a.StatusDistribution[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	topRows, err := db.Pool.Query(ctx, `
		SELECT v.id, v.name, COALESCE(SUM(o.grand_total), 0)::bigint AS revenue
		FROM orders o
		JOIN vendors v ON v.id = o.vendor_id
		WHERE o.status <> 'cancelled'
		GROUP BY v.id, v.name
		ORDER BY revenue DESC
		LIMIT 5`,
	)
	if err != nil {
		return nil, err
	}
	defer topRows.Close()
	for topRows.Next() {
		var vr models.VendorRevenue
		if err := topRows.Scan(&vr.VendorID, &vr.VendorName, &vr.Revenue); err != nil {
			return nil, err
		}
		a.TopVendors = append(a.TopVendors, vr)
	}
	return &a, topRows.Err()
}

// GetVendorPerformanceReport returns per-vendor order counts and revenue
// across all active vendors, highest revenue first.
func GetVendorPerformanceReport(ctx context.Context) ([]models.VendorPerformance, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT v.id, v.name,
			COUNT(o.id) FILTER (WHERE o.status <> 'cancelled')::int,
			COALESCE(SUM(o.grand_total) FILTER (WHERE o.status <> 'cancelled'), 0)::bigint,
			MAX(o.created_at)
		FROM vendors v
		LEFT JOIN orders o ON o.vendor_id = v.id
		WHERE v.is_active = true
		GROUP BY v.id, v.name
		ORDER BY 4 DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []models.VendorPerformance
	for rows.Next() {
		var p models.VendorPerformance
		if err := rows.Scan(&p.VendorID, &p.VendorName, &p.TotalOrders, &p.TotalAmount, &p.LastOrderDate); err != nil {
			return nil, err
		}
		if p.TotalOrders > 0 {
			p.AverageOrderValue = p.TotalAmount / int64(p.TotalOrders)
		}
		report = append(report, p)
	}
	return report, rows.Err()
}

// GetMonthlyTransactionSummary buckets stock movements by month for the last
// months months. Net change counts "in" positive and "out" negative;
// adjustments are reported separately (an absolute set, not a delta).
func GetMonthlyTransactionSummary(ctx context.Context, months int) ([]models.MonthlyTransactionSummary, error) {
	if months <= 0 {
		months = 12
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
			COALESCE(SUM(quantity) FILTER (WHERE transaction_type = 'in'), 0)::int,
			COALESCE(SUM(quantity) FILTER (WHERE transaction_type = 'out'), 0)::int,
			COALESCE(SUM(quantity) FILTER (WHERE transaction_type = 'adjustment'), 0)::int
		FROM stock_transactions
		WHERE created_at >= date_trunc('month', now()) - ($1 || ' months')::interval
		GROUP BY 1
		ORDER BY 1 DESC`,
		months,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.MonthlyTransactionSummary
	for rows.Next() {
		var m models.MonthlyTransactionSummary
		if err := rows.Scan(&m.Month, &m.TotalIn, &m.TotalOut, &m.TotalAdjustments); err != nil {
			return nil, err
		}
		m.NetChange = m.TotalIn - m.TotalOut
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetVendorRevenueTrend returns daily order counts and revenue for one vendor
// over the trailing days days (cancelled orders excluded).
func GetVendorRevenueTrend(ctx context.Context, vendorID int64, days int) ([]models.RevenuePoint, error) {
	if days <= 0 {
		days = 30
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT to_char(created_at::date, 'YYYY-MM-DD'),
			COUNT(*)::int,
			COALESCE(SUM(grand_total), 0)::bigint
		FROM orders
		WHERE vendor_id = $1 AND status <> 'cancelled'
			AND created_at >= now() - ($2 || ' days')::interval
		GROUP BY created_at::date
		ORDER BY created_at::date`,
		vendorID, days,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trend []models.RevenuePoint
	for rows.Next() {
		var p models.RevenuePoint
		if err := rows.Scan(&p.Day, &p.Orders, &p.Revenue); err != nil {
			return nil, err
		}
		trend = append(trend, p)
	}
	return trend, rows.Err()
}

// GetVendorStatusDistribution counts a vendor's orders by status.
func GetVendorStatusDistribution(ctx context.Context, vendorID int64) (map[string]int, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT status, COUNT(*)::int FROM orders WHERE vendor_id = $1 GROUP BY status`,
		vendorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dist := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		dist[status] = count
	}
	return dist, rows.Err()
}

// GetVendorTopItems returns a vendor's best sellers by quantity.
func GetVendorTopItems(ctx context.Context, vendorID int64, limit int) ([]models.TopItem, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT oi.menu_item_id, oi.name,
			SUM(oi.quantity)::int AS sold,
			COALESCE(SUM(oi.total_price), 0)::bigint
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.vendor_id = $1 AND o.status <> 'cancelled'
		GROUP BY oi.menu_item_id, oi.name
		ORDER BY sold DESC
		LIMIT $2`,
		vendorID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.TopItem
	for rows.Next() {
		var t models.TopItem
		if err := rows.Scan(&t.MenuItemID, &t.Name, &t.QuantitySold, &t.Revenue); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// GetVendorPeakHours counts a vendor's orders by hour of day.
func GetVendorPeakHours(ctx context.Context, vendorID int64) ([]models.PeakHour, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT EXTRACT(HOUR FROM created_at)::int AS hour, COUNT(*)::int
		FROM orders
		WHERE vendor_id = $1 AND status <> 'cancelled'
		GROUP BY 1
		ORDER BY 1`,
		vendorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hours []models.PeakHour
	for rows.Next() {
		var h models.PeakHour
		if err := rows.Scan(&h.Hour, &h.Orders); err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}
	return hours, rows.Err()
}
