package models

// BookingOwner is the user sub-record embedded in a booking. Legacy records
// may carry a partial owner or none at all.
type BookingOwner struct {
	ID    string `json:"id" db:"owner_id" dynamodbav:"id"`
	Name  string `json:"name" db:"owner_name" dynamodbav:"name"`
	Email string `json:"email" db:"owner_email" dynamodbav:"email"`
}

// Booking represents a reservation record. The ID is assigned at creation and
// never changes; this service only reads bookings.
type Booking struct {
	ID    string        `json:"id" db:"id" dynamodbav:"id" validate:"required,booking_id"`
	Date  string        `json:"date" db:"date" dynamodbav:"date"`
	Owner *BookingOwner `json:"user,omitempty" dynamodbav:"user"`
}

// OwnerView is the owner as rendered in responses. Fields are always present;
// anything missing on the stored record becomes an empty string.
type OwnerView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookingView is the whitelisted response shape for a booking. Stored
// attributes outside this set are never echoed back.
type BookingView struct {
	ID   string    `json:"id"`
	Date string    `json:"date"`
	User OwnerView `json:"user"`
}

// View projects the booking onto its response shape.
func (b *Booking) View() BookingView {
	view := BookingView{
		ID:   b.ID,
		Date: b.Date,
	}
	if b.Owner != nil {
		view.User = OwnerView{
			ID:    b.Owner.ID,
			Name:  b.Owner.Name,
			Email: b.Owner.Email,
		}
	}
	return view
}

// HasOwner reports whether the booking carries usable ownership data.
func (b *Booking) HasOwner() bool {
	return b.Owner != nil && b.Owner.ID != ""
}
