package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"booking-api/internal/config"
	"booking-api/internal/models"
	"booking-api/pkg/server"
)

// Seeds the configured booking store with sample records for local testing.
func main() {
	var (
		count      = flag.Int("count", 5, "Number of bookings to create")
		ownerID    = flag.String("owner-id", "user-123", "Owner id for the seeded bookings")
		ownerName  = flag.String("owner-name", "Test User", "Owner name")
		ownerEmail = flag.String("owner-email", "test@example.com", "Owner email")
		orphaned   = flag.Bool("orphaned", false, "Seed bookings without owner data")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	ctx := context.Background()
	container, err := server.NewContainer(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize container")
	}
	defer container.Close()

	for i := 0; i < *count; i++ {
		booking := &models.Booking{
			ID:   uuid.New().String(),
			Date: time.Now().AddDate(0, 0, i+1).Format("2006-01-02"),
		}
		if !*orphaned {
			booking.Owner = &models.BookingOwner{
				ID:    *ownerID,
				Name:  *ownerName,
				Email: *ownerEmail,
			}
		}

		if err := container.BookingService.PutBooking(ctx, booking); err != nil {
			logger.WithError(err).WithField("booking_id", booking.ID).Fatal("Failed to seed booking")
		}

		logger.WithFields(logrus.Fields{
			"booking_id": booking.ID,
			"date":       booking.Date,
		}).Info("Seeded booking")
	}

	logger.WithField("count", *count).Info("Seeding complete")
}
