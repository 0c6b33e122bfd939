package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
// completed and cancelled are terminal.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrInvalidDateRange = errors.New("invalid date range")
var ErrInvalidGuests = errors.New("invalid guest count")
var ErrDateConflict = errors.New("dates conflict with an existing booking")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking is the reservation aggregate linking a customer to a property for a
// date range. It is the sole record of whether a stay happened and whether it
// was reviewed; the rating/review/reviewed_at fields mirror the Review record
// for fast reads and are never authoritative.
type Booking struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	PropertyID    string        `json:"property_id"`
	CheckIn       time.Time     `json:"check_in"`
	CheckOut      time.Time     `json:"check_out"`
	Guests        int           `json:"guests"`
	Nights        int           `json:"nights"`
	PricePerNight float64       `json:"price_per_night"`
	TaxesAndFees  float64       `json:"taxes_and_fees"`
	TotalAmount   float64       `json:"total_amount"`
	Status        BookingStatus `json:"status"`
	Rating        *int          `json:"rating,omitempty"`
	Review        string        `json:"review,omitempty"`
	ReviewedAt    *time.Time    `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
