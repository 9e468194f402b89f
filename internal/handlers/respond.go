package handlers

import (
	"net/http"

	"booking-api/internal/services"
)

// MessageResponse is the body of every failure response. It carries a single
// human-readable message and nothing else; storage-layer detail never
// appears here.
type MessageResponse struct {
	Message string `json:"message"`
}

// Response messages, one per failure outcome.
const (
	msgMissingID       = "Booking ID is required"
	msgInvalidID       = "Invalid booking ID format"
	msgUnauthorized    = "Unauthorized"
	msgNotFound        = "Booking not found"
	msgForbidden       = "Not authorized to view this booking"
	msgStorageFailure  = "Error retrieving booking"
	msgInternalFailure = "Internal server error"
)

// outcomeResponse maps a pipeline outcome to its HTTP status and body. The
// mapping is total over the outcome enum; an unknown kind can only mean a
// programming error and maps to an opaque 500.
func outcomeResponse(out services.Outcome) (int, interface{}) {
	switch out.Kind {
	case services.OutcomeSuccess:
		return http.StatusOK, out.Booking.View()
	case services.OutcomeMissingID:
		return http.StatusBadRequest, MessageResponse{Message: msgMissingID}
	case services.OutcomeInvalidID:
		return http.StatusBadRequest, MessageResponse{Message: msgInvalidID}
	case services.OutcomeUnauthenticated:
		return http.StatusUnauthorized, MessageResponse{Message: msgUnauthorized}
	case services.OutcomeNotFound:
		return http.StatusNotFound, MessageResponse{Message: msgNotFound}
	case services.OutcomeForbidden:
		return http.StatusForbidden, MessageResponse{Message: msgForbidden}
	case services.OutcomeStorageError:
		return http.StatusInternalServerError, MessageResponse{Message: msgStorageFailure}
	case services.OutcomeMisconfigured:
		return http.StatusInternalServerError, MessageResponse{Message: msgInternalFailure}
	default:
		return http.StatusInternalServerError, MessageResponse{Message: msgInternalFailure}
	}
}
