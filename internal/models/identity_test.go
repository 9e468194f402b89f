package models

import "testing"

func TestRequestIdentityIsAuthenticated(t *testing.T) {
	if (RequestIdentity{}).IsAuthenticated() {
		t.Error("empty identity must not be authenticated")
	}
	if !(RequestIdentity{UserID: "user-123"}).IsAuthenticated() {
		t.Error("identity with user id must be authenticated")
	}
}

func TestRequestIdentityIsAdmin(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{"ADMIN", true},
		{"admin", false},
		{"Admin", false},
		{"USER", false},
		{"", false},
		{"ADMINISTRATOR", false},
	}

	for _, tt := range tests {
		got := RequestIdentity{UserID: "u", Role: tt.role}.IsAdmin()
		if got != tt.want {
			t.Errorf("IsAdmin() with role %q = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestRequestIdentityCanView(t *testing.T) {
	owned := &Booking{
		ID:    "550e8400-e29b-41d4-a716-446655440000",
		Owner: &BookingOwner{ID: "user-123"},
	}
	orphaned := &Booking{ID: "550e8400-e29b-41d4-a716-446655440000"}
	emptyOwner := &Booking{
		ID:    "550e8400-e29b-41d4-a716-446655440000",
		Owner: &BookingOwner{Name: "legacy record"},
	}

	tests := []struct {
		name     string
		identity RequestIdentity
		booking  *Booking
		want     bool
	}{
		{"owner sees own booking", RequestIdentity{UserID: "user-123", Role: "USER"}, owned, true},
		{"non-owner denied", RequestIdentity{UserID: "user-999", Role: "USER"}, owned, false},
		{"admin sees any booking", RequestIdentity{UserID: "admin-1", Role: "ADMIN"}, owned, true},
		{"admin sees orphaned booking", RequestIdentity{UserID: "admin-1", Role: "ADMIN"}, orphaned, true},
		{"regular user denied orphaned booking", RequestIdentity{UserID: "user-123", Role: "USER"}, orphaned, false},
		{"empty owner id fails closed", RequestIdentity{UserID: "user-123", Role: "USER"}, emptyOwner, false},
		{"owner match is case sensitive", RequestIdentity{UserID: "User-123", Role: "USER"}, owned, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.identity.CanView(tt.booking); got != tt.want {
				t.Errorf("CanView() = %v, want %v", got, tt.want)
			}
		})
	}
}
