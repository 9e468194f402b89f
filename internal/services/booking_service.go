package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"booking-api/internal/models"
	"booking-api/internal/repositories"
)

// BookingService runs the booking lookup pipeline: id validation, identity
// check, point-read, ownership authorization. It is stateless; the only
// dependency is the injected repository, which is safe for concurrent reuse.
type BookingService struct {
	bookings repositories.BookingRepository
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewBookingService creates a booking service.
func NewBookingService(bookings repositories.BookingRepository, logger *logrus.Logger) (*BookingService, error) {
	if logger == nil {
		logger = logrus.New()
	}

	v := validator.New()
	if err := models.RegisterValidations(v); err != nil {
		return nil, err
	}

	return &BookingService{
		bookings: bookings,
		validate: v,
		logger:   logger,
	}, nil
}

// GetBooking resolves a booking for the given caller. Steps run strictly in
// order and every failure short-circuits to a terminal outcome. Not-found is
// decided before authorization, so a caller probing foreign ids sees 404 for
// ids that do not exist and 403 only for ids proven to exist.
func (s *BookingService) GetBooking(ctx context.Context, rawID string, identity models.RequestIdentity) Outcome {
	if rawID == "" {
		return Outcome{Kind: OutcomeMissingID}
	}

	if !models.IsValidBookingID(rawID) {
		s.logger.WithField("booking_id", rawID).Debug("Rejected malformed booking id")
		return Outcome{Kind: OutcomeInvalidID}
	}

	if !identity.IsAuthenticated() {
		return Outcome{Kind: OutcomeUnauthenticated}
	}

	booking, err := s.bookings.GetByID(ctx, rawID)
	if err != nil {
		switch {
		case repositories.IsNotFound(err):
			return Outcome{Kind: OutcomeNotFound}
		case repositories.IsNotConfigured(err):
			s.logger.WithError(err).Error("Booking store is not configured")
			return Outcome{Kind: OutcomeMisconfigured}
		default:
			// Storage failures are logged with full detail for operators and
			// collapsed into one opaque outcome for the caller.
			s.logger.WithFields(logrus.Fields{
				"booking_id": rawID,
				"error":      err.Error(),
			}).Error("Booking lookup failed")
			return Outcome{Kind: OutcomeStorageError}
		}
	}

	if !identity.CanView(booking) {
		s.logger.WithFields(logrus.Fields{
			"booking_id": rawID,
			"user_id":    identity.UserID,
		}).Warn("Denied access to booking")
		return Outcome{Kind: OutcomeForbidden}
	}

	return Outcome{Kind: OutcomeSuccess, Booking: booking}
}

// PutBooking validates and stores a booking. The request path never writes;
// this exists for the seed tool and tests.
func (s *BookingService) PutBooking(ctx context.Context, booking *models.Booking) error {
	if err := s.validate.Struct(booking); err != nil {
		return err
	}
	return s.bookings.Put(ctx, booking)
}
