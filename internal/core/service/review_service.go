package service

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/stayhaven/booking-system/internal/api/metrics"
	"github.com/stayhaven/booking-system/internal/core/domain"
	"github.com/stayhaven/booking-system/internal/core/ports"
)

const (
	defaultReviewPageLimit = 20
	maxReviewPageLimit     = 100
)

// SummaryCache abstracts the rating summary cache (Redis).
type SummaryCache interface {
	Get(ctx context.Context, ownerID string) (*domain.RatingSummary, bool, error)
	Set(ctx context.Context, ownerID string, summary *domain.RatingSummary) error
	Invalidate(ctx context.Context, ownerID string) error
}

// ReviewService governs review attachment and owner rating aggregation. The
// review collection is the source of truth for rating data; the booking
// mirror fields are a read optimization written after the review insert.
type ReviewService struct {
	bookings   ports.BookingRepository
	properties ports.PropertyRepository
	reviews    ports.ReviewRepository
	users      ports.UserRepository
	cache      SummaryCache
	now        func() time.Time
	logger     zerolog.Logger
}

func NewReviewService(
	bookings ports.BookingRepository,
	properties ports.PropertyRepository,
	reviews ports.ReviewRepository,
	users ports.UserRepository,
	cache SummaryCache,
	logger zerolog.Logger,
) *ReviewService {
	return &ReviewService{
		bookings:   bookings,
		properties: properties,
		reviews:    reviews,
		users:      users,
		cache:      cache,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

// AttachReview creates the review for a completed booking and mirrors the
// rating onto the booking record. The unique index on the booking reference
// is the concurrency gate: under concurrent submission exactly one insert
// wins and the loser observes ErrDuplicateReview.
func (s *ReviewService) AttachReview(ctx context.Context, input ports.AttachReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	if utf8.RuneCountInString(input.Text) > domain.MaxReviewLength {
		return nil, domain.ErrReviewTooLong
	}

	booking, err := s.bookings.FindByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != input.CustomerID {
		return nil, domain.ErrForbidden
	}
	if booking.Status != domain.StatusCompleted {
		return nil, domain.ErrBookingNotCompleted
	}

	now := s.now()
	review := &domain.Review{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		PropertyID: booking.PropertyID,
		Rating:     input.Rating,
		Text:       input.Text,
		IsVerified: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	// Mirror update comes second: if it fails the review already exists and
	// all aggregation reads it directly, so the booking fields lag but never
	// diverge from a committed review.
	if err := s.bookings.SetReviewMirror(ctx, booking.ID, created.Rating, created.Text, now); err != nil {
		s.logger.Error().Err(err).Str("booking_id", booking.ID).Msg("review mirror update failed")
		return nil, fmt.Errorf("attach review: mirror update: %w", err)
	}

	s.invalidateOwnerSummary(ctx, booking.PropertyID)

	metrics.ReviewsCreatedTotal.WithLabelValues(fmt.Sprintf("%d", created.Rating)).Inc()
	s.logger.Info().
		Str("review_id", created.ID).
		Str("booking_id", booking.ID).
		Int("rating", created.Rating).
		Msg("review attached")

	return created, nil
}

// OwnerRatingsSummary computes the aggregate rating statistics across every
// property the owner holds. The result is recomputed from the review records
// and cached briefly; an owner with no properties or no reviews gets zeros.
func (s *ReviewService) OwnerRatingsSummary(ctx context.Context, ownerID string) (*domain.RatingSummary, error) {
	if cached, ok, err := s.cache.Get(ctx, ownerID); err != nil {
		s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("summary cache read failed, recomputing")
	} else if ok {
		metrics.SummaryCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.SummaryCacheTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	summary := emptySummary()

	propertyIDs, _, err := s.ownedProperties(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(propertyIDs) > 0 {
		reviews, err := s.reviews.ListByProperties(ctx, propertyIDs)
		if err != nil {
			return nil, fmt.Errorf("owner ratings summary: %w", err)
		}
		total := 0.0
		for _, r := range reviews {
			total += float64(r.Rating)
			summary.Distribution[r.Rating]++
		}
		summary.TotalReviews = len(reviews)
		if summary.TotalReviews > 0 {
			summary.AverageRating = math.Round(total/float64(summary.TotalReviews)*10) / 10
		}
	}

	metrics.SummaryComputeDuration.Observe(time.Since(start).Seconds())

	if err := s.cache.Set(ctx, ownerID, summary); err != nil {
		s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("summary cache write failed")
	}
	return summary, nil
}

// ListOwnerReviews returns one page of the owner's reviews across all
// properties, newest first, with customer and property display names attached.
func (s *ReviewService) ListOwnerReviews(ctx context.Context, ownerID string, page, limit int) (*ports.OwnerReviewsResult, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultReviewPageLimit
	}
	if limit > maxReviewPageLimit {
		limit = maxReviewPageLimit
	}

	propertyIDs, titles, err := s.ownedProperties(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	result := &ports.OwnerReviewsResult{Items: []ports.OwnerReviewItem{}, Page: page, Limit: limit}
	if len(propertyIDs) == 0 {
		return result, nil
	}

	reviews, total, err := s.reviews.ListPageByProperties(ctx, propertyIDs, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list owner reviews: %w", err)
	}

	names := make(map[string]string)
	for _, r := range reviews {
		name, ok := names[r.CustomerID]
		if !ok {
			name = s.customerName(ctx, r.CustomerID)
			names[r.CustomerID] = name
		}
		result.Items = append(result.Items, ports.OwnerReviewItem{
			Review:        *r,
			CustomerName:  name,
			PropertyTitle: titles[r.PropertyID],
		})
	}

	result.Total = total
	result.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	return result, nil
}

// MarkHelpful bumps the helpful counter. Rating and text are immutable after
// creation, so this and ReportReview are the only review mutations.
func (s *ReviewService) MarkHelpful(ctx context.Context, reviewID string) (*domain.Review, error) {
	return s.reviews.IncrementHelpful(ctx, reviewID)
}

// ReportReview flags the review for moderation.
func (s *ReviewService) ReportReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	return s.reviews.MarkReported(ctx, reviewID)
}

// ownedProperties returns the owner's property ids and an id to title map.
func (s *ReviewService) ownedProperties(ctx context.Context, ownerID string) ([]string, map[string]string, error) {
	properties, err := s.properties.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, fmt.Errorf("list owner properties: %w", err)
	}
	ids := make([]string, len(properties))
	titles := make(map[string]string, len(properties))
	for i, p := range properties {
		ids[i] = p.ID
		titles[p.ID] = p.Title
	}
	return ids, titles, nil
}

func (s *ReviewService) customerName(ctx context.Context, customerID string) string {
	user, err := s.users.FindByID(ctx, customerID)
	if err != nil {
		s.logger.Warn().Err(err).Str("customer_id", customerID).Msg("reviewer lookup failed")
		return ""
	}
	return user.Name
}

// invalidateOwnerSummary drops the cached summary of the property's owner so
// the next read reflects the new review. Cache errors are non-fatal.
func (s *ReviewService) invalidateOwnerSummary(ctx context.Context, propertyID string) {
	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		s.logger.Warn().Err(err).Str("property_id", propertyID).Msg("owner lookup for cache invalidation failed")
		return
	}
	if err := s.cache.Invalidate(ctx, property.OwnerID); err != nil {
		s.logger.Warn().Err(err).Str("owner_id", property.OwnerID).Msg("summary cache invalidation failed")
	}
}

func emptySummary() *domain.RatingSummary {
	return &domain.RatingSummary{
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
}
