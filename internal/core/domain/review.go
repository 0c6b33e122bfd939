package domain

import (
	"errors"
	"time"
)

// MaxReviewLength is the maximum review text length in characters.
const MaxReviewLength = 1000

var ErrReviewNotFound = errors.New("review not found")
var ErrDuplicateReview = errors.New("booking already reviewed")
var ErrBookingNotCompleted = errors.New("booking is not completed")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")
var ErrReviewTooLong = errors.New("review text exceeds maximum length")

// Review is guest feedback tied to exactly one completed booking. At most one
// review may exist per booking; after creation only the helpful counter and
// the reported flag may change.
type Review struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"booking_id"`
	CustomerID string    `json:"customer_id"`
	PropertyID string    `json:"property_id"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text,omitempty"`
	IsVerified bool      `json:"is_verified"`
	Helpful    int       `json:"helpful"`
	Reported   bool      `json:"reported"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RatingSummary is the aggregate rating view across all properties of one
// owner, recomputed from the review records on each call.
type RatingSummary struct {
	// AverageRating is rounded to one decimal for display; 0 when there are
	// no reviews.
	AverageRating float64     `json:"average_rating"`
	TotalReviews  int         `json:"total_reviews"`
	Distribution  map[int]int `json:"distribution"`
}
