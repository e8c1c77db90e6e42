package models

import "time"

type MenuItem struct {
	ID              int64     `json:"id"`
	VendorID        int64     `json:"vendor_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           int64     `json:"price"` // minor currency units
	Category        string    `json:"category"`
	IsAvailable     bool      `json:"is_available"`
	ImageURL        string    `json:"image_url,omitempty"`
	PreparationMins int       `json:"preparation_mins,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type MenuItemInput struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Price           int64  `json:"price"`
	Category        string `json:"category" binding:"required"`
	IsAvailable     *bool  `json:"is_available"` // nil means keep default (true)
	ImageURL        string `json:"image_url"`
	PreparationMins int    `json:"preparation_mins"`
}
