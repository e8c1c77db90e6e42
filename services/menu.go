package services

import (
	"context"
	"errors"
	"fmt"

	"vendorhub/db"
	"vendorhub/models"

	"github.com/jackc/pgx/v5"
)

const menuColumns = `id, vendor_id, name, description, price, category, is_available,
	COALESCE(image_url, ''), COALESCE(preparation_mins, 0), created_at, updated_at`

func scanMenuItem(row pgx.Row) (*models.MenuItem, error) {
	var m models.MenuItem
	err := row.Scan(&m.ID, &m.VendorID, &m.Name, &m.Description, &m.Price, &m.Category,
		&m.IsAvailable, &m.ImageURL, &m.PreparationMins, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	return scanMenuItem(db.Pool.QueryRow(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id = $1`, id))
}

func listMenu(ctx context.Context, where string, args ...any) ([]models.MenuItem, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+menuColumns+` FROM menu_items `+where+` ORDER BY category, id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.VendorID, &m.Name, &m.Description, &m.Price, &m.Category,
			&m.IsAvailable, &m.ImageURL, &m.PreparationMins, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// ListVendorMenu returns a vendor's menu. With onlyAvailable the unavailable
// items are hidden (buyer view).
func ListVendorMenu(ctx context.Context, vendorID int64, onlyAvailable bool) ([]models.MenuItem, error) {
	if onlyAvailable {
		return listMenu(ctx, "WHERE vendor_id = $1 AND is_available = true", vendorID)
	}
	return listMenu(ctx, "WHERE vendor_id = $1", vendorID)
}

func ListAllMenu(ctx context.Context) ([]models.MenuItem, error) {
	return listMenu(ctx, "")
}

// AddMenuItem creates a menu item for an approved vendor.
func AddMenuItem(ctx context.Context, vendorID int64, in models.MenuItemInput) (*models.MenuItem, error) {
	if err := validateMenuItemInput(in); err != nil {
		return nil, err
	}
	if _, err := RequireApprovedVendor(ctx, vendorID); err != nil {
		return nil, err
	}
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO menu_items (vendor_id, name, description, price, category, is_available, image_url, preparation_mins)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF(TRIM($7), ''), NULLIF($8, 0))
		RETURNING id`,
		vendorID, in.Name, in.Description, in.Price, in.Category, available, in.ImageURL, in.PreparationMins,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return GetMenuItem(ctx, id)
}

// UpdateMenuItem edits a vendor-owned menu item. vendorID 0 skips the
// ownership check (admin).
func UpdateMenuItem(ctx context.Context, id, vendorID int64, in models.MenuItemInput) error {
	if err := validateMenuItemInput(in); err != nil {
		return err
	}
	if err := checkMenuOwnership(ctx, id, vendorID); err != nil {
		return err
	}
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	res, err := db.Pool.Exec(ctx, `
		UPDATE menu_items SET
			name = $1, description = $2, price = $3, category = $4, is_available = $5,
			image_url = NULLIF(TRIM($6), ''), preparation_mins = NULLIF($7, 0), updated_at = now()
		WHERE id = $8`,
		in.Name, in.Description, in.Price, in.Category, available, in.ImageURL, in.PreparationMins, id,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func SetMenuItemAvailability(ctx context.Context, id, vendorID int64, available bool) error {
	if err := checkMenuOwnership(ctx, id, vendorID); err != nil {
		return err
	}
	res, err := db.Pool.Exec(ctx, `UPDATE menu_items SET is_available = $1, updated_at = now() WHERE id = $2`,
		available, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteMenuItem(ctx context.Context, id, vendorID int64) error {
	if err := checkMenuOwnership(ctx, id, vendorID); err != nil {
		return err
	}
	_, err := db.Pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	return err
}

func checkMenuOwnership(ctx context.Context, id, vendorID int64) error {
	if vendorID == 0 {
		return nil
	}
	m, err := GetMenuItem(ctx, id)
	if err != nil {
		return err
	}
	if m.VendorID != vendorID {
		return ErrForbidden
	}
	return nil
}

func validateMenuItemInput(in models.MenuItemInput) error {
	if in.Name == "" {
		return fmt.Errorf("name is required")
	}
	if in.Price < 0 {
		return fmt.Errorf("price must be >= 0")
	}
	return nil
}
