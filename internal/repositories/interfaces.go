package repositories

import (
	"context"

	"booking-api/internal/models"
)

// BookingRepository is the point-read capability the lookup pipeline depends
// on. GetByID performs exactly one key-based fetch and returns ErrNotFound
// when no record exists for the key. Put exists for seeding and tests; the
// request path never writes.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Put(ctx context.Context, booking *models.Booking) error
}
