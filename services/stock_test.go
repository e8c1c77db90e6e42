package services

import (
	"errors"
	"testing"

	"vendorhub/models"
)

func TestStockStatusForLevels(t *testing.T) {
	tests := []struct {
		current, reorder int
		want             string
	}{
		{0, 10, models.StockStatusOutOfStock},
		{0, 0, models.StockStatusOutOfStock},
		{-1, 10, models.StockStatusOutOfStock},
		{5, 10, models.StockStatusLowStock},
		{10, 10, models.StockStatusLowStock},
		{11, 10, models.StockStatusAvailable},
		{100, 0, models.StockStatusAvailable},
	}
	for _, tt := range tests {
		got := StockStatusForLevels(tt.current, tt.reorder)
		if got != tt.want {
			t.Errorf("StockStatusForLevels(%d, %d) = %q, want %q", tt.current, tt.reorder, got, tt.want)
		}
	}
}

func TestNewQuantityAfter(t *testing.T) {
	tests := []struct {
		current int
		typ     string
		qty     int
		want    int
		wantErr error
	}{
		{10, TransactionIn, 5, 15, nil},
		{0, TransactionIn, 100, 100, nil},
		{10, TransactionOut, 5, 5, nil},
		{10, TransactionOut, 10, 0, nil},
		{10, TransactionOut, 11, 0, ErrInsufficientStock},
		{0, TransactionOut, 1, 0, ErrInsufficientStock},
		{10, TransactionAdjustment, 3, 3, nil},
		{10, TransactionAdjustment, 0, 0, nil},
	}
	for _, tt := range tests {
		got, err := NewQuantityAfter(tt.current, tt.typ, tt.qty)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewQuantityAfter(%d, %q, %d) error = %v, want %v", tt.current, tt.typ, tt.qty, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewQuantityAfter(%d, %q, %d) unexpected error: %v", tt.current, tt.typ, tt.qty, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NewQuantityAfter(%d, %q, %d) = %d, want %d", tt.current, tt.typ, tt.qty, got, tt.want)
		}
	}
}

func TestNewQuantityAfterRejectsBadInput(t *testing.T) {
	if _, err := NewQuantityAfter(10, TransactionIn, -1); err == nil {
		t.Error("negative quantity should be rejected")
	}
	if _, err := NewQuantityAfter(10, "transfer", 1); err == nil {
		t.Error("unknown transaction type should be rejected")
	}
}
