package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vendorhub/db"

	"github.com/jackc/pgx/v5"
)

type CartItem struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	Qty        int    `json:"qty"`
}

// Cart is a buyer's open cart. Carts are single-vendor: adding an item from
// a different vendor replaces the cart contents.
type Cart struct {
	VendorID   int64      `json:"vendor_id"`
	Items      []CartItem `json:"items"`
	ItemsTotal int64      `json:"items_total"`
}

// CartTotal sums unit price times quantity over the items.
func CartTotal(items []CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.UnitPrice * int64(it.Qty)
	}
	return total
}

// MergeCartItem adds qty of item to items, folding into an existing line for
// the same menu item. qty may be negative to remove; lines at or below zero
// are dropped.
func MergeCartItem(items []CartItem, item CartItem) []CartItem {
	for i := range items {
		if items[i].MenuItemID == item.MenuItemID {
			items[i].Qty += item.Qty
			items[i].UnitPrice = item.UnitPrice
			if items[i].Qty <= 0 {
				return append(items[:i], items[i+1:]...)
			}
			return items
		}
	}
	if item.Qty <= 0 {
		return items
	}
	return append(items, item)
}

func GetCart(ctx context.Context, buyerID int64) (*Cart, error) {
	var vendorID int64
	var itemsJSON []byte
	var itemsTotal int64
	err := db.Pool.QueryRow(ctx, `
		SELECT vendor_id, items, items_total FROM carts WHERE buyer_id = $1`,
		buyerID,
	).Scan(&vendorID, &itemsJSON, &itemsTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &Cart{Items: []CartItem{}}, nil
		}
		return nil, err
	}

	var items []CartItem
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &items); err != nil {
			return nil, fmt.Errorf("unmarshal cart items: %w", err)
		}
	}
	return &Cart{VendorID: vendorID, Items: items, ItemsTotal: itemsTotal}, nil
}

func SaveCart(ctx context.Context, buyerID int64, cart *Cart) error {
	itemsJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("marshal cart items: %w", err)
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO carts (buyer_id, vendor_id, items, items_total, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (buyer_id) DO UPDATE SET
			vendor_id = $2,
			items = $3,
			items_total = $4,
			updated_at = now()`,
		buyerID, cart.VendorID, itemsJSON, cart.ItemsTotal,
	)
	return err
}

func DeleteCart(ctx context.Context, buyerID int64) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM carts WHERE buyer_id = $1`, buyerID)
	return err
}

// AddToCart puts qty of a menu item into the buyer's cart, repricing the line
// from the current menu. The item's vendor must be approved and the item
// available. A cart holding another vendor's items is replaced.
func AddToCart(ctx context.Context, buyerID, menuItemID int64, qty int) (*Cart, error) {
	item, err := GetMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable {
		return nil, ErrItemUnavailable
	}
	if _, err := RequireApprovedVendor(ctx, item.VendorID); err != nil {
		return nil, err
	}

	cart, err := GetCart(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if cart.VendorID != 0 && cart.VendorID != item.VendorID {
		cart = &Cart{Items: []CartItem{}}
	}
	cart.VendorID = item.VendorID
	cart.Items = MergeCartItem(cart.Items, CartItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Qty:        qty,
	})
	cart.ItemsTotal = CartTotal(cart.Items)

	if len(cart.Items) == 0 {
		if err := DeleteCart(ctx, buyerID); err != nil {
			return nil, err
		}
		return &Cart{Items: []CartItem{}}, nil
	}
	if err := SaveCart(ctx, buyerID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
