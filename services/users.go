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

const userColumns = `id, username, email, full_name, role, vendor_id,
	COALESCE(phone, ''), COALESCE(address, ''), is_active, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Role, &u.VendorID,
		&u.Phone, &u.Address, &u.IsActive, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return scanUser(db.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return scanUser(db.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

// RegisterBuyer creates a buyer account. Returns ErrUsernameTaken when the
// username is already registered.
func RegisterBuyer(ctx context.Context, in models.RegisterBuyerInput) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	var id int64
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO users (username, email, full_name, role, phone, address, is_active, password_hash)
		VALUES ($1, $2, $3, $4, NULLIF(TRIM($5), ''), NULLIF(TRIM($6), ''), true, $7)
		ON CONFLICT DO NOTHING
		RETURNING id`,
		in.Username, in.Email, in.FullName, models.RoleBuyer, in.Phone, in.Address, string(hash),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create buyer: %w", err)
	}
	return GetUserByID(ctx, id)
}

// EnsureAdmin creates the admin account on first start if it does not exist.
// An existing account with the same username is left untouched.
func EnsureAdmin(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO users (username, email, full_name, role, is_active, password_hash)
		VALUES ($1, '', 'Administrator', $2, true, $3)
		ON CONFLICT DO NOTHING`,
		username, models.RoleAdmin, string(hash),
	)
	return err
}

// Authenticate verifies username/password against the stored bcrypt hash.
// Inactive accounts cannot log in.
func Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Role, &u.VendorID,
			&u.Phone, &u.Address, &u.IsActive, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateUser applies an admin edit. A non-empty Password replaces the hash.
func UpdateUser(ctx context.Context, id int64, in models.UpdateUserInput) error {
	if !models.ValidRole(in.Role) {
		return fmt.Errorf("invalid role: %s", in.Role)
	}
	res, err := db.Pool.Exec(ctx, `
		UPDATE users SET username = $1, email = $2, full_name = $3, role = $4, is_active = $5, updated_at = now()
		WHERE id = $6`,
		in.Username, in.Email, in.FullName, in.Role, in.IsActive, id,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	if in.Password != "" {
		return SetPassword(ctx, id, in.Password)
	}
	return nil
}

func SetPassword(ctx context.Context, userID int64, plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	res, err := db.Pool.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`,
		string(hash), userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetPassword generates a fresh password for a non-admin user and returns
// the plain text once. Do not log the returned string.
func ResetPassword(ctx context.Context, userID int64) (string, error) {
	u, err := GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if u.Role == models.RoleAdmin {
		return "", ErrForbidden
	}
	plain, err := GeneratePassword(resetPasswordLen)
	if err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}
	if err := SetPassword(ctx, userID, plain); err != nil {
		return "", err
	}
	return plain, nil
}

// DeleteUser removes a user account. Admin accounts cannot be deleted.
func DeleteUser(ctx context.Context, userID int64) error {
	u, err := GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if u.Role == models.RoleAdmin {
		return ErrForbidden
	}
	_, err = db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	return err
}
