package services

import (
	"context"
	"errors"
	"fmt"

	"vendorhub/db"
	"vendorhub/models"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const vendorColumns = `id, name, contact_person, phone, email, address, business_type,
	COALESCE(description, ''), is_active, is_approved, created_at, updated_at`

func scanVendor(row pgx.Row) (*models.Vendor, error) {
	var v models.Vendor
	err := row.Scan(&v.ID, &v.Name, &v.ContactPerson, &v.Phone, &v.Email, &v.Address,
		&v.BusinessType, &v.Description, &v.IsActive, &v.IsApproved, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func GetVendorByID(ctx context.Context, id int64) (*models.Vendor, error) {
	return scanVendor(db.Pool.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id))
}

func listVendors(ctx context.Context, where string, args ...any) ([]models.Vendor, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+vendorColumns+` FROM vendors `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vendors []models.Vendor
	for rows.Next() {
		var v models.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.ContactPerson, &v.Phone, &v.Email, &v.Address,
			&v.BusinessType, &v.Description, &v.IsActive, &v.IsApproved, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func ListVendors(ctx context.Context) ([]models.Vendor, error) {
	return listVendors(ctx, "")
}

// ListApprovedVendors returns vendors buyers may order from.
func ListApprovedVendors(ctx context.Context) ([]models.Vendor, error) {
	return listVendors(ctx, "WHERE is_approved = true AND is_active = true")
}

func ListPendingVendors(ctx context.Context) ([]models.Vendor, error) {
	return listVendors(ctx, "WHERE is_approved = false AND is_active = true")
}

// RegisterVendor creates the business record and its login account in one
// transaction. The vendor starts unapproved; an admin must approve it before
// menu and stock management open up.
func RegisterVendor(ctx context.Context, in models.RegisterVendorInput) (*models.Vendor, *models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}
	businessType := in.BusinessType
	if businessType == "" {
		businessType = "Restaurant"
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var vendorID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO vendors (name, contact_person, phone, email, address, business_type, description, is_active, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF(TRIM($7), ''), true, false)
		RETURNING id`,
		in.BusinessName, in.ContactPerson, in.Phone, in.BusinessEmail, in.Address, businessType, in.Description,
	).Scan(&vendorID)
	if err != nil {
		return nil, nil, fmt.Errorf("create vendor: %w", err)
	}

	var userID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO users (username, email, full_name, role, vendor_id, is_active, password_hash)
		VALUES ($1, $2, $3, $4, $5, true, $6)
		ON CONFLICT DO NOTHING
		RETURNING id`,
		in.Username, in.Email, in.FullName, models.RoleVendor, vendorID, string(hash),
	).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrUsernameTaken
		}
		return nil, nil, fmt.Errorf("create vendor user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}
	vendor, err := GetVendorByID(ctx, vendorID)
	if err != nil {
		return nil, nil, err
	}
	user, err := GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return vendor, user, nil
}

// ApproveVendor marks a pending vendor approved.
func ApproveVendor(ctx context.Context, vendorID int64) error {
	res, err := db.Pool.Exec(ctx, `
		UPDATE vendors SET is_approved = true, updated_at = now()
		WHERE id = $1 AND is_active = true`,
		vendorID,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RejectVendor deactivates a vendor that was awaiting approval.
func RejectVendor(ctx context.Context, vendorID int64) error {
	res, err := db.Pool.Exec(ctx, `
		UPDATE vendors SET is_active = false, updated_at = now()
		WHERE id = $1 AND is_approved = false`,
		vendorID,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeactivateVendor(ctx context.Context, vendorID int64) error {
	res, err := db.Pool.Exec(ctx, `UPDATE vendors SET is_active = false, updated_at = now() WHERE id = $1`, vendorID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func UpdateVendor(ctx context.Context, vendorID int64, in models.UpdateVendorInput) error {
	businessType := in.BusinessType
	if businessType == "" {
		businessType = "Restaurant"
	}
	res, err := db.Pool.Exec(ctx, `
		UPDATE vendors SET
			name = $1, contact_person = $2, phone = $3, email = $4, address = $5,
			business_type = $6, description = NULLIF(TRIM($7), ''),
			is_active = $8, is_approved = $9, updated_at = now()
		WHERE id = $10`,
		in.Name, in.ContactPerson, in.Phone, in.Email, in.Address,
		businessType, in.Description, in.IsActive, in.IsApproved, vendorID,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RequireApprovedVendor loads the vendor and fails unless it is approved and active.
func RequireApprovedVendor(ctx context.Context, vendorID int64) (*models.Vendor, error) {
	v, err := GetVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if !v.IsApproved || !v.IsActive {
		return nil, ErrVendorNotApproved
	}
	return v, nil
}
