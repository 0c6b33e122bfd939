package handler

import (
	"github.com/stayhaven/booking-system/internal/core/domain"
)

// --- Service result to HTTP response ---

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		PropertyID:    b.PropertyID,
		CheckIn:       b.CheckIn.UTC(),
		CheckOut:      b.CheckOut.UTC(),
		Guests:        b.Guests,
		Nights:        b.Nights,
		PricePerNight: b.PricePerNight,
		TaxesAndFees:  b.TaxesAndFees,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		Rating:        b.Rating,
		Review:        b.Review,
		ReviewedAt:    b.ReviewedAt,
		CreatedAt:     b.CreatedAt.UTC(),
	}
}

func toListBookingsResponse(bookings []*domain.Booking) listBookingsResponse {
	items := make([]bookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = toBookingResponse(b)
	}
	return listBookingsResponse{Data: items}
}
