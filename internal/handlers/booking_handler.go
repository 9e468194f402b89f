package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"booking-api/internal/middleware"
	"booking-api/internal/models"
	"booking-api/internal/services"
	"booking-api/pkg/lambda"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService *services.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// GetBooking handles GET /bookings/:id on the local gin server. The identity
// context has already been populated by the authorizer middleware; absent
// fields flow through as empty and the pipeline answers 401.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	identity := models.RequestIdentity{
		UserID: c.GetString(middleware.UserIDKey),
		Role:   c.GetString(middleware.RoleKey),
	}

	out := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"), identity)
	status, body := outcomeResponse(out)
	c.JSON(status, body)
}

// HandleGet handles the same lookup for the Lambda entrypoint, which has
// already extracted the path parameter and the authorizer identity.
func (h *BookingHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	out := h.bookingService.GetBooking(ctx, req.PathParams["id"], req.Identity)
	status, body := outcomeResponse(out)
	return lambda.NewJSONResponse(status, body)
}
