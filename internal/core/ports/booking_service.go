package ports

import (
	"context"
	"time"

	"github.com/stayhaven/booking-system/internal/core/domain"
)

// CreateBookingInput carries all data needed to create a new booking.
// Amounts are never accepted from the caller; nights and total are derived
// server-side from the property price and the date range.
type CreateBookingInput struct {
	CustomerID string
	PropertyID string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
}

// TransitionBookingInput carries a requested status change. ActorID must be
// either the booking's customer or the property's owner; which transitions
// each party may request is enforced by the service.
type TransitionBookingInput struct {
	BookingID string
	ActorID   string
	Target    domain.BookingStatus
}

// BookingService owns the booking lifecycle state machine.
type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	TransitionBooking(ctx context.Context, input TransitionBookingInput) (*domain.Booking, error)
	ListBookingsForCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	// ListBookingsForOwner returns bookings on all properties owned by ownerID.
	ListBookingsForOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error)
	// CompleteDueBookings moves every confirmed booking whose checkout has
	// passed to completed and returns how many were completed.
	CompleteDueBookings(ctx context.Context, now time.Time) (int, error)
}
