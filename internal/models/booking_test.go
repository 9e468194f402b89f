package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	if err := RegisterValidations(v); err != nil {
		t.Fatalf("failed to register validations: %v", err)
	}
	return v
}

func TestBookingView(t *testing.T) {
	tests := []struct {
		name    string
		booking Booking
		want    BookingView
	}{
		{
			name: "full owner",
			booking: Booking{
				ID:   "550e8400-e29b-41d4-a716-446655440000",
				Date: "2026-09-01",
				Owner: &BookingOwner{
					ID:    "user-123",
					Name:  "Jordan Smith",
					Email: "jordan@example.com",
				},
			},
			want: BookingView{
				ID:   "550e8400-e29b-41d4-a716-446655440000",
				Date: "2026-09-01",
				User: OwnerView{ID: "user-123", Name: "Jordan Smith", Email: "jordan@example.com"},
			},
		},
		{
			name: "partial owner renders empty strings",
			booking: Booking{
				ID:    "550e8400-e29b-41d4-a716-446655440000",
				Date:  "2026-09-01",
				Owner: &BookingOwner{ID: "user-123"},
			},
			want: BookingView{
				ID:   "550e8400-e29b-41d4-a716-446655440000",
				Date: "2026-09-01",
				User: OwnerView{ID: "user-123", Name: "", Email: ""},
			},
		},
		{
			name: "no owner renders empty user object",
			booking: Booking{
				ID:   "550e8400-e29b-41d4-a716-446655440000",
				Date: "2026-09-01",
			},
			want: BookingView{
				ID:   "550e8400-e29b-41d4-a716-446655440000",
				Date: "2026-09-01",
				User: OwnerView{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.View())
		})
	}
}

func TestHasOwner(t *testing.T) {
	assert.False(t, (&Booking{}).HasOwner())
	assert.False(t, (&Booking{Owner: &BookingOwner{}}).HasOwner())
	assert.False(t, (&Booking{Owner: &BookingOwner{Name: "No ID"}}).HasOwner())
	assert.True(t, (&Booking{Owner: &BookingOwner{ID: "user-123"}}).HasOwner())
}
