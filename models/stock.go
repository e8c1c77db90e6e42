package models

import "time"

const (
	StockStatusAvailable  = "available"
	StockStatusLowStock   = "low_stock"
	StockStatusOutOfStock = "out_of_stock"
)

type StockItem struct {
	ID           int64     `json:"id"`
	VendorID     int64     `json:"vendor_id"`
	ItemName     string    `json:"item_name"`
	Description  string    `json:"description"`
	Unit         string    `json:"unit"` // kg, liter, piece, ...
	CurrentStock int       `json:"current_stock"`
	MinimumStock int       `json:"minimum_stock"`
	MaximumStock int       `json:"maximum_stock"`
	ReorderLevel int       `json:"reorder_level"`
	UnitCost     int64     `json:"unit_cost"` // minor currency units
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type StockItemInput struct {
	ItemName     string `json:"item_name" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Unit         string `json:"unit" binding:"required"`
	MinimumStock int    `json:"minimum_stock"`
	MaximumStock int    `json:"maximum_stock"`
	ReorderLevel int    `json:"reorder_level"`
	UnitCost     int64  `json:"unit_cost"`
}

type StockTransaction struct {
	ID              int64     `json:"id"`
	StockID         int64     `json:"stock_id"`
	VendorID        int64     `json:"vendor_id"`
	TransactionType string    `json:"transaction_type"`
	Quantity        int       `json:"quantity"`
	UnitCost        int64     `json:"unit_cost"`
	TotalCost       int64     `json:"total_cost"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedBy       int64     `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

type StockTransactionInput struct {
	StockID         int64  `json:"stock_id" binding:"required"`
	TransactionType string `json:"transaction_type" binding:"required,oneof=in out adjustment"`
	Quantity        int    `json:"quantity" binding:"min=0"` // zero is legal for adjustments
	UnitCost        int64  `json:"unit_cost"`
	ReferenceNumber string `json:"reference_number"`
	Notes           string `json:"notes"`
}
