package models

import "time"

type Order struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"order_number"`
	VendorID        int64       `json:"vendor_id"`
	BuyerID         int64       `json:"buyer_id"`
	ItemsTotal      int64       `json:"items_total"`
	DeliveryFee     int64       `json:"delivery_fee"`
	GrandTotal      int64       `json:"grand_total"`
	Status          string      `json:"status"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	CreatedBy       int64       `json:"created_by"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Items           []OrderItem `json:"items,omitempty"`
	VendorName      string      `json:"vendor_name,omitempty"`
	BuyerName       string      `json:"buyer_name,omitempty"`
}

type OrderItem struct {
	ID         int64  `json:"id"`
	OrderID    int64  `json:"order_id"`
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"` // menu item name at order time
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
	TotalPrice int64  `json:"total_price"`
}

type OrderItemInput struct {
	MenuItemID int64 `json:"menu_item_id" binding:"required"`
	Quantity   int   `json:"quantity" binding:"required,min=1"`
}

type CreateOrderInput struct {
	BuyerID         int64
	VendorID        int64
	Items           []OrderItemInput
	DeliveryAddress string
	Notes           string
	DeliveryFee     int64
}

type StatusChange struct {
	ID         int64     `json:"id"`
	OrderID    int64     `json:"order_id"`
	FromStatus *string   `json:"from_status"` // nil on creation
	ToStatus   string    `json:"to_status"`
	ActorID    int64     `json:"actor_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type DailyStats struct {
	OrdersCount     int   `json:"orders_count"`
	ItemsRevenue    int64 `json:"items_revenue"`
	DeliveryRevenue int64 `json:"delivery_revenue"`
	GrandRevenue    int64 `json:"grand_revenue"`
	CancelledCount  int   `json:"cancelled_count"`
}
