package server

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"booking-api/internal/config"
	"booking-api/internal/middleware"
	"booking-api/internal/repositories"
	ddb "booking-api/internal/repositories/dynamodb"
	"booking-api/internal/repositories/sqlite"
	"booking-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *logrus.Logger
	Bookings       repositories.BookingRepository
	BookingService *services.BookingService
	AuthService    *middleware.AuthService

	db *sql.DB
}

// NewContainer creates a new dependency injection container. The repository
// driver comes from configuration: DynamoDB for deployed environments, SQLite
// for local development.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger := config.ConfigureLogger(cfg)

	var bookings repositories.BookingRepository
	var db *sql.DB

	switch cfg.Repository.Driver {
	case "sqlite":
		var err error
		db, err = sqlite.Open(cfg.Repository.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		bookings = sqlite.NewBookingRepository(db, logger)

	case "dynamodb":
		client, err := ddb.NewClient(ctx, ddb.ClientConfig{
			Region:   cfg.AWS.Region,
			Endpoint: cfg.AWS.Endpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		bookings = ddb.NewBookingRepository(client, cfg.AWS.BookingsTable, logger)

	default:
		return nil, fmt.Errorf("unknown repository driver: %s", cfg.Repository.Driver)
	}

	bookingService, err := services.NewBookingService(bookings, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking service: %w", err)
	}

	authService := middleware.NewAuthService(&middleware.AuthConfig{
		JWTSecret:     cfg.JWT.Secret,
		TokenDuration: time.Duration(cfg.JWT.ExpiryHours) * time.Hour,
	})

	return &Container{
		Config:         cfg,
		Logger:         logger,
		Bookings:       bookings,
		BookingService: bookingService,
		AuthService:    authService,
		db:             db,
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}
