package handler

import (
	"github.com/stayhaven/booking-system/internal/core/domain"
	"github.com/stayhaven/booking-system/internal/core/ports"
)

func toReviewResponse(review *domain.Review) reviewResponse {
	return reviewResponse{
		ID:         review.ID,
		BookingID:  review.BookingID,
		CustomerID: review.CustomerID,
		PropertyID: review.PropertyID,
		Rating:     review.Rating,
		Text:       review.Text,
		IsVerified: review.IsVerified,
		Helpful:    review.Helpful,
		Reported:   review.Reported,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}

func toOwnerReviewsResponse(result *ports.OwnerReviewsResult) ownerReviewsResponse {
	items := make([]ownerReviewItemResponse, 0, len(result.Items))
	for i := range result.Items {
		item := result.Items[i]
		items = append(items, ownerReviewItemResponse{
			reviewResponse: toReviewResponse(&item.Review),
			CustomerName:   item.CustomerName,
			PropertyTitle:  item.PropertyTitle,
		})
	}

	return ownerReviewsResponse{
		Data:       items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
}

func toRatingSummaryResponse(summary *domain.RatingSummary) ratingSummaryResponse {
	return ratingSummaryResponse{
		AverageRating: summary.AverageRating,
		TotalReviews:  summary.TotalReviews,
		Distribution:  summary.Distribution,
	}
}
