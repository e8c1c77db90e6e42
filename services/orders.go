package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vendorhub/db"
	"vendorhub/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidStatusTransition reports whether an order may move from one status to
// another. Delivered and cancelled are terminal; cancellation branches off
// every pre-ready status.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusConfirmed || to == OrderStatusCancelled
	case OrderStatusConfirmed:
		return to == OrderStatusPreparing || to == OrderStatusCancelled
	case OrderStatusPreparing:
		return to == OrderStatusReady || to == OrderStatusCancelled
	case OrderStatusReady:
		return to == OrderStatusDelivered
	}
	return false
}

// RoleCanSetStatus reports whether a role may apply a (valid) transition.
// Buyers may only cancel while the order is still pending; vendors run the
// fulfillment flow on their own orders; admins and staff may apply any
// valid move.
func RoleCanSetStatus(role, from, to string) bool {
	if !ValidStatusTransition(from, to) {
		return false
	}
	switch role {
	case models.RoleAdmin, models.RoleStaff:
		return true
	case models.RoleVendor:
		return true
	case models.RoleBuyer:
		return from == OrderStatusPending && to == OrderStatusCancelled
	}
	return false
}

// NewOrderNumber builds an order number like ORD-20260824-9FA31C07.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

const orderColumns = `id, order_number, vendor_id, buyer_id, items_total, delivery_fee, grand_total,
	status, COALESCE(delivery_address, ''), COALESCE(notes, ''), created_by, created_at, updated_at`

func scanOrder(row pgx.Row) (*models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.VendorID, &o.BuyerID, &o.ItemsTotal, &o.DeliveryFee,
		&o.GrandTotal, &o.Status, &o.DeliveryAddress, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// CreateOrder prices the requested items from the current menu, writes the
// order, its items and the initial status history row in one transaction.
func CreateOrder(ctx context.Context, in models.CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrCartEmpty
	}
	if _, err := RequireApprovedVendor(ctx, in.VendorID); err != nil {
		return nil, err
	}

	type pricedItem struct {
		menuItemID int64
		name       string
		qty        int
		unitPrice  int64
	}
	var priced []pricedItem
	var itemsTotal int64
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be >= 1")
		}
		m, err := GetMenuItem(ctx, it.MenuItemID)
		if err != nil {
			return nil, err
		}
		if m.VendorID != in.VendorID {
			return nil, fmt.Errorf("menu item %d does not belong to vendor %d", it.MenuItemID, in.VendorID)
		}
		if !m.IsAvailable {
			return nil, ErrItemUnavailable
		}
		priced = append(priced, pricedItem{menuItemID: m.ID, name: m.Name, qty: it.Quantity, unitPrice: m.Price})
		itemsTotal += m.Price * int64(it.Quantity)
	}
	grandTotal := itemsTotal + in.DeliveryFee

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var orderID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (order_number, vendor_id, buyer_id, items_total, delivery_fee, grand_total,
			status, delivery_address, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF(TRIM($8), ''), NULLIF(TRIM($9), ''), $10)
		RETURNING id`,
		NewOrderNumber(time.Now()), in.VendorID, in.BuyerID, itemsTotal, in.DeliveryFee, grandTotal,
		OrderStatusPending, in.DeliveryAddress, in.Notes, in.BuyerID,
	).Scan(&orderID)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	for _, p := range priced {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, name, quantity, unit_price, total_price)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			orderID, p.menuItemID, p.name, p.qty, p.unitPrice, p.unitPrice*int64(p.qty),
		)
		if err != nil {
			return nil, fmt.Errorf("create order item: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO order_status_history (order_id, from_status, to_status, actor_id)
		VALUES ($1, NULL, $2, $3)`,
		orderID, OrderStatusPending, in.BuyerID,
	)
	if err != nil {
		return nil, fmt.Errorf("record status history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return GetOrder(ctx, orderID)
}

// CheckoutCart turns the buyer's cart into an order and clears the cart.
func CheckoutCart(ctx context.Context, buyerID int64, deliveryAddress, notes string, deliveryFee int64) (*models.Order, error) {
	cart, err := GetCart(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}
	items := make([]models.OrderItemInput, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, models.OrderItemInput{MenuItemID: it.MenuItemID, Quantity: it.Qty})
	}
	order, err := CreateOrder(ctx, models.CreateOrderInput{
		BuyerID:         buyerID,
		VendorID:        cart.VendorID,
		Items:           items,
		DeliveryAddress: deliveryAddress,
		Notes:           notes,
		DeliveryFee:     deliveryFee,
	})
	if err != nil {
		return nil, err
	}
	if err := DeleteCart(ctx, buyerID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	return order, nil
}

// UpdateOrderStatus applies a status transition on behalf of actor. Ownership
// is enforced (vendor users only touch their vendor's orders, buyers only
// their own), the transition is validated, and the move is guarded by a
// conditional update on the expected current status so concurrent updates
// cannot skip states. The change is appended to order_status_history.
func UpdateOrderStatus(ctx context.Context, orderID int64, newStatus string, actor *models.User) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var fromStatus string
	var vendorID, buyerID int64
	err = tx.QueryRow(ctx, `
		SELECT status, vendor_id, buyer_id FROM orders WHERE id = $1 FOR UPDATE`,
		orderID,
	).Scan(&fromStatus, &vendorID, &buyerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	switch actor.Role {
	case models.RoleAdmin, models.RoleStaff:
	case models.RoleVendor:
		if actor.VendorID == nil || *actor.VendorID != vendorID {
			return ErrForbidden
		}
	case models.RoleBuyer:
		if actor.ID != buyerID {
			return ErrForbidden
		}
	default:
		return ErrForbidden
	}
	if !ValidStatusTransition(fromStatus, newStatus) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, fromStatus, newStatus)
	}
	if !RoleCanSetStatus(actor.Role, fromStatus, newStatus) {
		return ErrForbidden
	}

	res, err := tx.Exec(ctx, `
		UPDATE orders SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
		newStatus, orderID, fromStatus,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("%w: order changed concurrently", ErrInvalidTransition)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO order_status_history (order_id, from_status, to_status, actor_id)
		VALUES ($1, $2, $3, $4)`,
		orderID, fromStatus, newStatus, actor.ID,
	)
	if err != nil {
		return fmt.Errorf("record status history: %w", err)
	}
	return tx.Commit(ctx)
}

// GetOrder returns an order with its items.
func GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	o, err := scanOrder(db.Pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID))
	if err != nil {
		return nil, err
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT id, order_id, menu_item_id, name, quantity, unit_price, total_price
		FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.Name, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	return o, rows.Err()
}

func listOrders(ctx context.Context, where string, args ...any) ([]models.Order, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT o.id, o.order_number, o.vendor_id, o.buyer_id, o.items_total, o.delivery_fee, o.grand_total,
			o.status, COALESCE(o.delivery_address, ''), COALESCE(o.notes, ''), o.created_by, o.created_at, o.updated_at,
			v.name, u.full_name
		FROM orders o
		JOIN vendors v ON v.id = o.vendor_id
		JOIN users u ON u.id = o.buyer_id
		`+where+`
		ORDER BY o.created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.VendorID, &o.BuyerID, &o.ItemsTotal, &o.DeliveryFee,
			&o.GrandTotal, &o.Status, &o.DeliveryAddress, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
			&o.VendorName, &o.BuyerName); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func ListVendorOrders(ctx context.Context, vendorID int64) ([]models.Order, error) {
	return listOrders(ctx, "WHERE o.vendor_id = $1", vendorID)
}

func ListBuyerOrders(ctx context.Context, buyerID int64) ([]models.Order, error) {
	return listOrders(ctx, "WHERE o.buyer_id = $1", buyerID)
}

func ListAllOrders(ctx context.Context) ([]models.Order, error) {
	return listOrders(ctx, "")
}

// GetOrderStatusHistory returns the transition log for an order, oldest first.
func GetOrderStatusHistory(ctx context.Context, orderID int64) ([]models.StatusChange, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, order_id, from_status, to_status, actor_id, created_at
		FROM order_status_history WHERE order_id = $1 ORDER BY created_at, id`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.StatusChange
	for rows.Next() {
		var h models.StatusChange
		if err := rows.Scan(&h.ID, &h.OrderID, &h.FromStatus, &h.ToStatus, &h.ActorID, &h.CreatedAt); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

// GetDailyStats aggregates order counts and revenue for a calendar date
// (YYYY-MM-DD). Cancelled orders are excluded from revenue.
func GetDailyStats(ctx context.Context, date string) (*models.DailyStats, error) {
	var s models.DailyStats
	err := db.Pool.QueryRow(ctx, `
		SELECT
			COUNT(*)::int,
			COALESCE(SUM(items_total) FILTER (WHERE status <> 'cancelled'), 0)::bigint,
			COALESCE(SUM(delivery_fee) FILTER (WHERE status <> 'cancelled'), 0)::bigint,
			COALESCE(SUM(grand_total) FILTER (WHERE status <> 'cancelled'), 0)::bigint,
			COUNT(*) FILTER (WHERE status = 'cancelled')::int
		FROM orders
		WHERE created_at::date = $1::date`,
		date,
	).Scan(&s.OrdersCount, &s.ItemsRevenue, &s.DeliveryRevenue, &s.GrandRevenue, &s.CancelledCount)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
