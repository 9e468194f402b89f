package models

// RoleAdmin is the single role value that bypasses ownership checks. The
// comparison is exact; any other value is a regular user.
const RoleAdmin = "ADMIN"

// RequestIdentity is the caller's authenticated identity as populated by the
// external authorizer. It is constructed fresh per request and trusted as-is;
// token verification happens upstream.
type RequestIdentity struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// IsAuthenticated reports whether a caller identity is present. An empty
// user ID is treated the same as no identity at all.
func (i RequestIdentity) IsAuthenticated() bool {
	return i.UserID != ""
}

// IsAdmin reports whether the identity carries the privileged role.
func (i RequestIdentity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanView decides access to a booking: admins always, otherwise only the
// booking's owner. Owner comparison is byte-for-byte string equality with no
// normalization. A booking without ownership data is never viewable by a
// regular user (fail closed).
func (i RequestIdentity) CanView(booking *Booking) bool {
	if i.IsAdmin() {
		return true
	}
	return booking.HasOwner() && booking.Owner.ID == i.UserID
}
