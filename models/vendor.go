package models

import "time"

type Vendor struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	BusinessType  string    `json:"business_type"`
	Description   string    `json:"description,omitempty"`
	IsActive      bool      `json:"is_active"`
	IsApproved    bool      `json:"is_approved"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RegisterVendorInput carries both halves of vendor onboarding: the login
// account and the business record. The vendor stays unapproved until an
// admin reviews it.
type RegisterVendorInput struct {
	Username      string `json:"username" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	FullName      string `json:"full_name" binding:"required"`
	Password      string `json:"password" binding:"required,min=6"`
	BusinessName  string `json:"business_name" binding:"required"`
	ContactPerson string `json:"contact_person" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	BusinessEmail string `json:"business_email" binding:"required,email"`
	Address       string `json:"address" binding:"required"`
	BusinessType  string `json:"business_type"`
	Description   string `json:"description"`
}

type UpdateVendorInput struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Address       string `json:"address" binding:"required"`
	BusinessType  string `json:"business_type"`
	Description   string `json:"description"`
	IsActive      bool   `json:"is_active"`
	IsApproved    bool   `json:"is_approved"`
}
