package ports

import (
	"context"

	"github.com/stayhaven/booking-system/internal/core/domain"
)

// AttachReviewInput carries a review submission for one booking.
type AttachReviewInput struct {
	BookingID  string
	CustomerID string
	Rating     int
	Text       string
}

// OwnerReviewItem is a review denormalized with display names for listing.
type OwnerReviewItem struct {
	Review        domain.Review
	CustomerName  string
	PropertyTitle string
}

// OwnerReviewsResult is one page of an owner's reviews across all properties.
type OwnerReviewsResult struct {
	Items      []OwnerReviewItem
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ReviewService governs review attachment and rating aggregation.
type ReviewService interface {
	AttachReview(ctx context.Context, input AttachReviewInput) (*domain.Review, error)
	OwnerRatingsSummary(ctx context.Context, ownerID string) (*domain.RatingSummary, error)
	ListOwnerReviews(ctx context.Context, ownerID string, page, limit int) (*OwnerReviewsResult, error)
	MarkHelpful(ctx context.Context, reviewID string) (*domain.Review, error)
	ReportReview(ctx context.Context, reviewID string) (*domain.Review, error)
}
