package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID           int64
	TableID      int64
	Reference    string
	GuestName    string
	GuestContact string
	PartySize    int
	StartsAt     time.Time
	EndsAt       time.Time
	Status       BookingStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Overlaps reports whether the booking's [StartsAt, EndsAt) interval
// intersects [start, end). Touching endpoints do not overlap, so
// back-to-back bookings on the same table are allowed.
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.StartsAt.Before(end) && start.Before(b.EndsAt)
}
