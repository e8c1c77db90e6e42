package services

import (
	"context"
	"errors"
	"fmt"

	"vendorhub/db"
	"vendorhub/models"

	"github.com/jackc/pgx/v5"
)

const (
	TransactionIn         = "in"
	TransactionOut        = "out"
	TransactionAdjustment = "adjustment"
)

const stockColumns = `id, vendor_id, item_name, description, unit, current_stock,
	minimum_stock, maximum_stock, reorder_level, unit_cost, status, created_at, updated_at`

// StockStatusForLevels derives the stock status from current quantity and
// reorder level: zero is out of stock, at or below reorder is low.
func StockStatusForLevels(current, reorderLevel int) string {
	switch {
	case current <= 0:
		return models.StockStatusOutOfStock
	case current <= reorderLevel:
		return models.StockStatusLowStock
	default:
		return models.StockStatusAvailable
	}
}

// NewQuantityAfter computes the stock level a transaction produces.
// "in" adds, "out" subtracts (never below zero), "adjustment" sets the
// absolute quantity.
func NewQuantityAfter(current int, transactionType string, quantity int) (int, error) {
	if quantity < 0 {
		return 0, fmt.Errorf("quantity must be >= 0")
	}
	switch transactionType {
	case TransactionIn:
		return current + quantity, nil
	case TransactionOut:
		if quantity > current {
			return 0, ErrInsufficientStock
		}
		return current - quantity, nil
	case TransactionAdjustment:
		return quantity, nil
	default:
		return 0, fmt.Errorf("invalid transaction type: %s", transactionType)
	}
}

func scanStockItem(row pgx.Row) (*models.StockItem, error) {
	var s models.StockItem
	err := row.Scan(&s.ID, &s.VendorID, &s.ItemName, &s.Description, &s.Unit, &s.CurrentStock,
		&s.MinimumStock, &s.MaximumStock, &s.ReorderLevel, &s.UnitCost, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func GetStockItem(ctx context.Context, id int64) (*models.StockItem, error) {
	return scanStockItem(db.Pool.QueryRow(ctx, `SELECT `+stockColumns+` FROM stock WHERE id = $1`, id))
}

func listStock(ctx context.Context, where string, args ...any) ([]models.StockItem, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+stockColumns+` FROM stock `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.StockItem
	for rows.Next() {
		var s models.StockItem
		if err := rows.Scan(&s.ID, &s.VendorID, &s.ItemName, &s.Description, &s.Unit, &s.CurrentStock,
			&s.MinimumStock, &s.MaximumStock, &s.ReorderLevel, &s.UnitCost, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func ListVendorStock(ctx context.Context, vendorID int64) ([]models.StockItem, error) {
	return listStock(ctx, "WHERE vendor_id = $1", vendorID)
}

func ListAllStock(ctx context.Context) ([]models.StockItem, error) {
	return listStock(ctx, "")
}

// LowStockItems returns items at or below their reorder level. vendorID 0
// means all vendors.
func LowStockItems(ctx context.Context, vendorID int64) ([]models.StockItem, error) {
	if vendorID != 0 {
		return listStock(ctx, "WHERE vendor_id = $1 AND current_stock <= reorder_level", vendorID)
	}
	return listStock(ctx, "WHERE current_stock <= reorder_level")
}

// CreateStockItem creates a stock record for an approved vendor. New items
// start at zero quantity; the first "in" transaction fills them.
func CreateStockItem(ctx context.Context, vendorID int64, in models.StockItemInput) (*models.StockItem, error) {
	if in.ItemName == "" {
		return nil, fmt.Errorf("item_name is required")
	}
	if in.MaximumStock > 0 && in.MinimumStock > in.MaximumStock {
		return nil, fmt.Errorf("minimum_stock exceeds maximum_stock")
	}
	if _, err := RequireApprovedVendor(ctx, vendorID); err != nil {
		return nil, err
	}
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO stock (vendor_id, item_name, description, unit, current_stock,
			minimum_stock, maximum_stock, reorder_level, unit_cost, status)
		VALUES ($1, $2, $3, $4, 0, $5, $6, $7, $8, $9)
		RETURNING id`,
		vendorID, in.ItemName, in.Description, in.Unit,
		in.MinimumStock, in.MaximumStock, in.ReorderLevel, in.UnitCost,
		models.StockStatusOutOfStock,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create stock item: %w", err)
	}
	return GetStockItem(ctx, id)
}

// ApplyStockTransaction records an inventory movement and adjusts the stock
// level in the same database transaction. The stock row is locked for the
// duration so concurrent movements cannot lose updates. vendorID 0 skips the
// ownership check (admin).
func ApplyStockTransaction(ctx context.Context, vendorID, createdBy int64, in models.StockTransactionInput) (*models.StockTransaction, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current, reorderLevel int
	var ownerID int64
	var itemUnitCost int64
	err = tx.QueryRow(ctx, `
		SELECT current_stock, reorder_level, vendor_id, unit_cost FROM stock WHERE id = $1 FOR UPDATE`,
		in.StockID,
	).Scan(&current, &reorderLevel, &ownerID, &itemUnitCost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if vendorID != 0 && ownerID != vendorID {
		return nil, ErrForbidden
	}

	newQty, err := NewQuantityAfter(current, in.TransactionType, in.Quantity)
	if err != nil {
		return nil, err
	}

	unitCost := in.UnitCost
	if unitCost == 0 {
		unitCost = itemUnitCost
	}
	totalCost := unitCost * int64(in.Quantity)

	_, err = tx.Exec(ctx, `
		UPDATE stock SET current_stock = $1, status = $2, updated_at = now() WHERE id = $3`,
		newQty, StockStatusForLevels(newQty, reorderLevel), in.StockID,
	)
	if err != nil {
		return nil, fmt.Errorf("update stock level: %w", err)
	}

	var t models.StockTransaction
	err = tx.QueryRow(ctx, `
		INSERT INTO stock_transactions (stock_id, vendor_id, transaction_type, quantity,
			unit_cost, total_cost, reference_number, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF(TRIM($7), ''), $8, $9)
		RETURNING id, stock_id, vendor_id, transaction_type, quantity, unit_cost, total_cost,
			COALESCE(reference_number, ''), COALESCE(notes, ''), created_by, created_at`,
		in.StockID, ownerID, in.TransactionType, in.Quantity,
		unitCost, totalCost, in.ReferenceNumber, in.Notes, createdBy,
	).Scan(&t.ID, &t.StockID, &t.VendorID, &t.TransactionType, &t.Quantity, &t.UnitCost,
		&t.TotalCost, &t.ReferenceNumber, &t.Notes, &t.CreatedBy, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("record stock transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListStockTransactions returns recent transactions, newest first.
// vendorID 0 means all vendors.
func ListStockTransactions(ctx context.Context, vendorID int64, limit int) ([]models.StockTransaction, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, stock_id, vendor_id, transaction_type, quantity, unit_cost, total_cost,
			COALESCE(reference_number, ''), COALESCE(notes, ''), created_by, created_at
		FROM stock_transactions`
	args := []any{limit}
	if vendorID != 0 {
		query += ` WHERE vendor_id = $2`
		args = append(args, vendorID)
	}
	query += ` ORDER BY created_at DESC LIMIT $1`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.StockTransaction
	for rows.Next() {
		var t models.StockTransaction
		if err := rows.Scan(&t.ID, &t.StockID, &t.VendorID, &t.TransactionType, &t.Quantity,
			&t.UnitCost, &t.TotalCost, &t.ReferenceNumber, &t.Notes, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// TotalStockValue is sum(current_stock * unit_cost) across all stock.
func TotalStockValue(ctx context.Context) (int64, error) {
	var total int64
	err := db.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(current_stock::bigint * unit_cost), 0) FROM stock`,
	).Scan(&total)
	return total, err
}
