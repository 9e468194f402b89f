package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-api/internal/middleware"
	"booking-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	BookingService *services.BookingService
	AuthService    *middleware.AuthService
	RateLimitRPS   float64
	RateLimitBurst int
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	bookingHandler := NewBookingHandler(config.BookingService)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "booking-api",
		})
	})

	bookings := router.Group("/bookings")
	bookings.Use(middleware.RateLimit(config.RateLimitRPS, config.RateLimitBurst))
	bookings.Use(middleware.IdentityContext(config.AuthService))
	{
		bookings.GET("/:id", bookingHandler.GetBooking)
	}
}
