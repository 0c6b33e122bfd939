package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createBookingRequest struct {
	PropertyID string    `json:"property_id" validate:"required"`
	CheckIn    time.Time `json:"check_in"    validate:"required"`
	CheckOut   time.Time `json:"check_out"   validate:"required"`
	Guests     int       `json:"guests"      validate:"required,min=1"`
}

type transitionBookingRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
}

// --- Response types ---

type bookingResponse struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	PropertyID    string     `json:"property_id"`
	CheckIn       time.Time  `json:"check_in"`
	CheckOut      time.Time  `json:"check_out"`
	Guests        int        `json:"guests"`
	Nights        int        `json:"nights"`
	PricePerNight float64    `json:"price_per_night"`
	TaxesAndFees  float64    `json:"taxes_and_fees"`
	TotalAmount   float64    `json:"total_amount"`
	Status        string     `json:"status"`
	Rating        *int       `json:"rating,omitempty"`
	Review        string     `json:"review,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type listBookingsResponse struct {
	Data []bookingResponse `json:"data"`
}
