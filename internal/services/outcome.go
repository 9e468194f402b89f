package services

import "booking-api/internal/models"

// OutcomeKind enumerates every terminal state of the booking lookup pipeline.
// The set is closed; response shaping is a total function over it.
type OutcomeKind int

const (
	// OutcomeSuccess means the booking was found and the caller may view it.
	OutcomeSuccess OutcomeKind = iota

	// OutcomeMissingID means no booking id was supplied.
	OutcomeMissingID

	// OutcomeInvalidID means the supplied id is not a canonical UUID.
	OutcomeInvalidID

	// OutcomeUnauthenticated means no caller identity was present.
	OutcomeUnauthenticated

	// OutcomeNotFound means no booking exists for the id.
	OutcomeNotFound

	// OutcomeForbidden means the booking exists but the caller is neither its
	// owner nor an admin.
	OutcomeForbidden

	// OutcomeStorageError means the storage call failed.
	OutcomeStorageError

	// OutcomeMisconfigured means the store location is missing from
	// configuration; storage was never called.
	OutcomeMisconfigured
)

// String returns the outcome kind name for logging.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeMissingID:
		return "missing_id"
	case OutcomeInvalidID:
		return "invalid_id"
	case OutcomeUnauthenticated:
		return "unauthenticated"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeForbidden:
		return "forbidden"
	case OutcomeStorageError:
		return "storage_error"
	case OutcomeMisconfigured:
		return "misconfigured"
	default:
		return "unknown"
	}
}

// Outcome is the result of one pass through the lookup pipeline. Booking is
// set only for OutcomeSuccess.
type Outcome struct {
	Kind    OutcomeKind
	Booking *models.Booking
}
