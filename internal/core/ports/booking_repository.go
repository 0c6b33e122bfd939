package ports

import (
	"context"
	"time"

	"github.com/stayhaven/booking-system/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	ListByProperties(ctx context.Context, propertyIDs []string) ([]*domain.Booking, error)

	// UpdateStatus performs a compare-and-set: the status is changed to `to`
	// only if the stored status still equals `from`. When the document no
	// longer matches (status moved concurrently), domain.ErrInvalidTransition
	// is returned.
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus, at time.Time) error

	// SetReviewMirror writes the denormalized rating/review/reviewed_at fields
	// onto the booking in a single atomic update.
	SetReviewMirror(ctx context.Context, id string, rating int, text string, at time.Time) error

	// CountOverlapping counts confirmed or completed bookings on the property
	// whose [check_in, check_out) range overlaps the given one, excluding the
	// booking identified by excludeID.
	CountOverlapping(ctx context.Context, propertyID string, checkIn, checkOut time.Time, excludeID string) (int64, error)

	// ListDueForCompletion returns confirmed bookings whose checkout date has
	// passed as of now.
	ListDueForCompletion(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}
