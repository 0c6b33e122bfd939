package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayhaven/booking-system/internal/api/metrics"
	"github.com/stayhaven/booking-system/internal/core/domain"
	"github.com/stayhaven/booking-system/internal/core/ports"
)

// DefaultTaxesAndFees is the fixed per-booking charge applied when no value
// is configured.
const DefaultTaxesAndFees = 25.0

// BookingService implements the booking lifecycle state machine.
type BookingService struct {
	bookings     ports.BookingRepository
	properties   ports.PropertyRepository
	taxesAndFees float64
	now          func() time.Time
	logger       zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, properties ports.PropertyRepository, taxesAndFees float64, logger zerolog.Logger) *BookingService {
	if taxesAndFees <= 0 {
		taxesAndFees = DefaultTaxesAndFees
	}
	return &BookingService{
		bookings:     bookings,
		properties:   properties,
		taxesAndFees: taxesAndFees,
		now:          func() time.Time { return time.Now().UTC() },
		logger:       logger,
	}
}

// CreateBooking validates the request, derives nights and total amount from
// the property price, and persists a new booking in pending status.
func (s *BookingService) CreateBooking(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	nights := nightsBetween(input.CheckIn, input.CheckOut)
	if nights < 1 {
		return nil, domain.ErrInvalidDateRange
	}
	if input.Guests < 1 {
		return nil, domain.ErrInvalidGuests
	}

	property, err := s.properties.FindByID(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if !property.Active {
		return nil, domain.ErrPropertyInactive
	}
	if property.MaxGuests > 0 && input.Guests > property.MaxGuests {
		return nil, domain.ErrInvalidGuests
	}

	now := s.now()
	booking := &domain.Booking{
		CustomerID:    input.CustomerID,
		PropertyID:    property.ID,
		CheckIn:       dateOnly(input.CheckIn),
		CheckOut:      dateOnly(input.CheckOut),
		Guests:        input.Guests,
		Nights:        nights,
		PricePerNight: property.PricePerNight,
		TaxesAndFees:  s.taxesAndFees,
		TotalAmount:   float64(nights)*property.PricePerNight + s.taxesAndFees,
		Status:        domain.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("property_id", property.ID).Msg("failed to create booking")
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()
	s.logger.Info().
		Str("booking_id", created.ID).
		Str("property_id", property.ID).
		Str("customer_id", input.CustomerID).
		Int("nights", nights).
		Float64("total_amount", created.TotalAmount).
		Msg("booking created")

	return created, nil
}

// TransitionBooking applies one state machine transition on behalf of actor.
// Only the property owner may confirm or complete; either the customer or the
// owner may cancel. The persisted update is a compare-and-set on the current
// status, so a concurrent transition loses cleanly.
func (s *BookingService) TransitionBooking(ctx context.Context, input ports.TransitionBookingInput) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	property, err := s.properties.FindByID(ctx, booking.PropertyID)
	if err != nil {
		return nil, err
	}

	isCustomer := booking.CustomerID == input.ActorID
	isOwner := property.OwnerID == input.ActorID
	if !isCustomer && !isOwner {
		return nil, domain.ErrForbidden
	}

	if !booking.Status.CanTransitionTo(input.Target) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, input.Target)
	}

	switch input.Target {
	case domain.StatusConfirmed:
		if !isOwner {
			return nil, domain.ErrForbidden
		}
		if !property.Active {
			return nil, domain.ErrPropertyInactive
		}
		overlapping, err := s.bookings.CountOverlapping(ctx, booking.PropertyID, booking.CheckIn, booking.CheckOut, booking.ID)
		if err != nil {
			return nil, fmt.Errorf("confirm booking: %w", err)
		}
		if overlapping > 0 {
			return nil, domain.ErrDateConflict
		}
	case domain.StatusCompleted:
		if !isOwner {
			return nil, domain.ErrForbidden
		}
		if s.now().Before(booking.CheckOut) {
			return nil, fmt.Errorf("%w (checkout not reached)", domain.ErrInvalidTransition)
		}
	case domain.StatusCancelled:
		// either party may cancel from pending or confirmed
	default:
		return nil, fmt.Errorf("%w (target %s)", domain.ErrInvalidTransition, input.Target)
	}

	now := s.now()
	if err := s.bookings.UpdateStatus(ctx, booking.ID, booking.Status, input.Target, now); err != nil {
		return nil, err
	}

	metrics.BookingTransitionsTotal.WithLabelValues(string(booking.Status), string(input.Target)).Inc()
	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("from", string(booking.Status)).
		Str("to", string(input.Target)).
		Str("actor_id", input.ActorID).
		Msg("booking transitioned")

	booking.Status = input.Target
	booking.UpdatedAt = now
	return booking, nil
}

// ListBookingsForCustomer returns all bookings made by the customer.
func (s *BookingService) ListBookingsForCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	return s.bookings.ListByCustomer(ctx, customerID)
}

// ListBookingsForOwner returns bookings on every property the owner holds.
func (s *BookingService) ListBookingsForOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	properties, err := s.properties.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(properties) == 0 {
		return []*domain.Booking{}, nil
	}
	ids := make([]string, len(properties))
	for i, p := range properties {
		ids[i] = p.ID
	}
	return s.bookings.ListByProperties(ctx, ids)
}

// CompleteDueBookings sweeps confirmed bookings whose checkout has passed and
// completes them. Individual failures are logged and skipped so one bad
// record cannot stall the sweep.
func (s *BookingService) CompleteDueBookings(ctx context.Context, now time.Time) (int, error) {
	due, err := s.bookings.ListDueForCompletion(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list due bookings: %w", err)
	}

	completed := 0
	for _, b := range due {
		if err := s.bookings.UpdateStatus(ctx, b.ID, domain.StatusConfirmed, domain.StatusCompleted, now); err != nil {
			s.logger.Warn().Err(err).Str("booking_id", b.ID).Msg("completion sweep skipped booking")
			continue
		}
		metrics.BookingTransitionsTotal.WithLabelValues(string(domain.StatusConfirmed), string(domain.StatusCompleted)).Inc()
		completed++
	}

	if completed > 0 {
		s.logger.Info().Int("completed", completed).Msg("completion sweep finished")
	}
	return completed, nil
}

// nightsBetween returns the whole-day difference between the checkout and
// check-in dates, ignoring time-of-day.
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(dateOnly(checkOut).Sub(dateOnly(checkIn)).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
