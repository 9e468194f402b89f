package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"booking-api/internal/models"
	"booking-api/internal/repositories"
)

// BookingRepository implements repositories.BookingRepository on SQLite. It
// exists for local development; deployed environments use the DynamoDB
// implementation behind the same interface.
type BookingRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewBookingRepository creates a SQLite booking repository.
func NewBookingRepository(db *sql.DB, logger *logrus.Logger) *BookingRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &BookingRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a booking by id.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if r.db == nil {
		return nil, repositories.NotConfiguredError("booking")
	}

	query := `
		SELECT id, date, owner_id, owner_name, owner_email
		FROM bookings
		WHERE id = ?`

	start := time.Now()
	row := r.db.QueryRowContext(ctx, query, id)

	booking := &models.Booking{}
	var ownerID, ownerName, ownerEmail sql.NullString
	err := row.Scan(
		&booking.ID,
		&booking.Date,
		&ownerID,
		&ownerName,
		&ownerEmail,
	)
	r.logQuery("get_by_id", id, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError("booking", id)
		}
		return nil, repositories.UnavailableError("get_by_id", "booking", id, err)
	}

	// NULL owner columns on every field means the record has no owner at all;
	// otherwise missing sub-fields collapse to empty strings.
	if ownerID.Valid || ownerName.Valid || ownerEmail.Valid {
		booking.Owner = &models.BookingOwner{
			ID:    ownerID.String,
			Name:  ownerName.String,
			Email: ownerEmail.String,
		}
	}

	return booking, nil
}

// Put inserts or replaces a booking. Used by seeding and tests only.
func (r *BookingRepository) Put(ctx context.Context, booking *models.Booking) error {
	if r.db == nil {
		return repositories.NotConfiguredError("booking")
	}

	query := `
		INSERT OR REPLACE INTO bookings (id, date, owner_id, owner_name, owner_email)
		VALUES (?, ?, ?, ?, ?)`

	var ownerID, ownerName, ownerEmail interface{}
	if booking.Owner != nil {
		ownerID = booking.Owner.ID
		ownerName = booking.Owner.Name
		ownerEmail = booking.Owner.Email
	}

	start := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.Date,
		ownerID,
		ownerName,
		ownerEmail,
	)
	r.logQuery("put", booking.ID, time.Since(start), err)

	if err != nil {
		return repositories.UnavailableError("put", "booking", booking.ID, err)
	}

	return nil
}

func (r *BookingRepository) logQuery(operation, id string, duration time.Duration, err error) {
	fields := logrus.Fields{
		"operation":  operation,
		"table":      "bookings",
		"booking_id": id,
		"duration":   duration,
	}

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		fields["error"] = err.Error()
		r.logger.WithFields(fields).Error("Query failed")
	} else {
		r.logger.WithFields(fields).Debug("Query executed")
	}
}
