package handler

import "time"

type attachReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text" validate:"max=1000"`
}

type reviewResponse struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"booking_id"`
	CustomerID string    `json:"customer_id"`
	PropertyID string    `json:"property_id"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	IsVerified bool      `json:"is_verified"`
	Helpful    int       `json:"helpful"`
	Reported   bool      `json:"reported"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ownerReviewItemResponse struct {
	reviewResponse
	CustomerName  string `json:"customer_name"`
	PropertyTitle string `json:"property_title"`
}

type ownerReviewsResponse struct {
	Data       []ownerReviewItemResponse `json:"data"`
	Total      int64                     `json:"total"`
	Page       int                       `json:"page"`
	Limit      int                       `json:"limit"`
	TotalPages int                       `json:"total_pages"`
}

type ratingSummaryResponse struct {
	AverageRating float64     `json:"average_rating"`
	TotalReviews  int         `json:"total_reviews"`
	Distribution  map[int]int `json:"distribution"`
}
