package services

import (
	"regexp"
	"testing"
	"time"

	"vendorhub/models"
)

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusPreparing, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusConfirmed, OrderStatusPreparing, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusReady, false},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusPreparing, OrderStatusCancelled, true},
		{OrderStatusPreparing, OrderStatusDelivered, false},
		{OrderStatusReady, OrderStatusDelivered, true},
		{OrderStatusReady, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{"", OrderStatusConfirmed, false},
		{OrderStatusPending, "", false},
	}
	for _, tt := range tests {
		got := ValidStatusTransition(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("ValidStatusTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestRoleCanSetStatus(t *testing.T) {
	tests := []struct {
		role, from, to string
		want           bool
	}{
		{models.RoleAdmin, OrderStatusPending, OrderStatusConfirmed, true},
		{models.RoleAdmin, OrderStatusReady, OrderStatusDelivered, true},
		{models.RoleAdmin, OrderStatusReady, OrderStatusCancelled, false},
		{models.RoleVendor, OrderStatusPending, OrderStatusConfirmed, true},
		{models.RoleVendor, OrderStatusPreparing, OrderStatusReady, true},
		{models.RoleVendor, OrderStatusPending, OrderStatusCancelled, true},
		{models.RoleBuyer, OrderStatusPending, OrderStatusCancelled, true},
		{models.RoleBuyer, OrderStatusConfirmed, OrderStatusCancelled, false},
		{models.RoleBuyer, OrderStatusPending, OrderStatusConfirmed, false},
		{models.RoleStaff, OrderStatusPending, OrderStatusConfirmed, true},
		{models.RoleStaff, OrderStatusPreparing, OrderStatusReady, true},
		{models.RoleStaff, OrderStatusReady, OrderStatusCancelled, false},
		{"", OrderStatusPending, OrderStatusConfirmed, false},
	}
	for _, tt := range tests {
		got := RoleCanSetStatus(tt.role, tt.from, tt.to)
		if got != tt.want {
			t.Errorf("RoleCanSetStatus(%q, %q, %q) = %v, want %v", tt.role, tt.from, tt.to, got, tt.want)
		}
	}
}

// Staff handle orders with the same permissions as admins, across every
// possible status pair.
func TestStaffOrderPermissionsMatchAdmin(t *testing.T) {
	statuses := []string{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled,
	}
	for _, from := range statuses {
		for _, to := range statuses {
			admin := RoleCanSetStatus(models.RoleAdmin, from, to)
			staff := RoleCanSetStatus(models.RoleStaff, from, to)
			if staff != admin {
				t.Errorf("RoleCanSetStatus(staff, %q, %q) = %v, admin gets %v", from, to, staff, admin)
			}
		}
	}
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)
	pattern := regexp.MustCompile(`^ORD-20260824-[0-9A-F]{8}$`)

	n1 := NewOrderNumber(now)
	if !pattern.MatchString(n1) {
		t.Errorf("NewOrderNumber(%v) = %q, want match for %s", now, n1, pattern)
	}
	n2 := NewOrderNumber(now)
	if n1 == n2 {
		t.Errorf("two order numbers for the same instant collided: %q", n1)
	}
}
