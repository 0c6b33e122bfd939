package ports

import (
	"context"

	"github.com/stayhaven/booking-system/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews. The store
// enforces uniqueness on the booking reference; Create surfaces a violation
// as domain.ErrDuplicateReview.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	FindByBookingID(ctx context.Context, bookingID string) (*domain.Review, error)
	// ListByProperties returns every review on the given properties.
	ListByProperties(ctx context.Context, propertyIDs []string) ([]*domain.Review, error)
	// ListPageByProperties returns one page of reviews on the given
	// properties, newest first (created_at desc, id desc on ties), along with
	// the total count.
	ListPageByProperties(ctx context.Context, propertyIDs []string, page, limit int) ([]*domain.Review, int64, error)
	// IncrementHelpful bumps the helpful counter and returns the updated review.
	IncrementHelpful(ctx context.Context, id string) (*domain.Review, error)
	// MarkReported sets the reported flag and returns the updated review.
	MarkReported(ctx context.Context, id string) (*domain.Review, error)
}
