package services

import "testing"

func TestCartTotal(t *testing.T) {
	items := []CartItem{
		{MenuItemID: 1, UnitPrice: 2500, Qty: 2},
		{MenuItemID: 2, UnitPrice: 1200, Qty: 1},
	}
	if got := CartTotal(items); got != 6200 {
		t.Errorf("CartTotal = %d, want 6200", got)
	}
	if got := CartTotal(nil); got != 0 {
		t.Errorf("CartTotal(nil) = %d, want 0", got)
	}
}

func TestMergeCartItem(t *testing.T) {
	items := MergeCartItem(nil, CartItem{MenuItemID: 1, Name: "Plov", UnitPrice: 2500, Qty: 2})
	if len(items) != 1 || items[0].Qty != 2 {
		t.Fatalf("add to empty cart: got %+v", items)
	}

	// Same item folds into the existing line.
	items = MergeCartItem(items, CartItem{MenuItemID: 1, UnitPrice: 2500, Qty: 3})
	if len(items) != 1 || items[0].Qty != 5 {
		t.Fatalf("fold same item: got %+v", items)
	}

	// A second item gets its own line.
	items = MergeCartItem(items, CartItem{MenuItemID: 2, Name: "Lagman", UnitPrice: 1800, Qty: 1})
	if len(items) != 2 {
		t.Fatalf("add second item: got %+v", items)
	}

	// Negative qty removes; the line drops when it reaches zero.
	items = MergeCartItem(items, CartItem{MenuItemID: 1, UnitPrice: 2500, Qty: -5})
	if len(items) != 1 || items[0].MenuItemID != 2 {
		t.Fatalf("remove item: got %+v", items)
	}

	// Adding a non-positive qty for an absent item is a no-op.
	items = MergeCartItem(items, CartItem{MenuItemID: 9, Qty: 0})
	if len(items) != 1 {
		t.Fatalf("zero qty for absent item: got %+v", items)
	}

	// Merging refreshes the stored unit price.
	items = MergeCartItem(items, CartItem{MenuItemID: 2, UnitPrice: 2000, Qty: 1})
	if items[0].UnitPrice != 2000 || items[0].Qty != 2 {
		t.Fatalf("reprice on merge: got %+v", items)
	}
}
