package models

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Booking ID validation regex: canonical UUID shape, 8-4-4-4-12 hex groups,
// case-insensitive. Purely syntactic; version and variant nibbles are not
// checked, so any 32 hex digits in the right grouping pass.
var bookingIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsValidBookingID reports whether id has the canonical UUID shape. The id is
// used downstream exactly as given; no case normalization happens here.
func IsValidBookingID(id string) bool {
	return bookingIDRegex.MatchString(id)
}

// RegisterValidations adds the custom field validations used by booking
// models to a validator instance.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("booking_id", func(fl validator.FieldLevel) bool {
		return IsValidBookingID(fl.Field().String())
	})
}
