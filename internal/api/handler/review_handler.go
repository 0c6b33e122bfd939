package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stayhaven/booking-system/internal/core/ports"
)

// ReviewHandler handles HTTP requests for reviews and rating aggregates.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Attach handles POST /v1/bookings/:id/review.
//
// @Summary      Attach a review to a completed booking
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Booking ID"
// @Param        body  body      attachReviewRequest  true  "Review details"
// @Success      201   {object}  reviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings/{id}/review [post]
func (h *ReviewHandler) Attach(c echo.Context) error {
	var req attachReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	review, err := h.service.AttachReview(c.Request().Context(), ports.AttachReviewInput{
		BookingID:  c.Param("id"),
		CustomerID: userID,
		Rating:     req.Rating,
		Text:       req.Text,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toReviewResponse(review))
}

// ListForOwner handles GET /v1/owner/reviews with page/limit pagination.
//
// @Summary      List reviews across the owner's properties
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number, starting at 1"
// @Param        limit  query     int  false  "Page size, max 100"
// @Success      200    {object}  ownerReviewsResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /v1/owner/reviews [get]
func (h *ReviewHandler) ListForOwner(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListOwnerReviews(c.Request().Context(), userID, page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOwnerReviewsResponse(result))
}

// RatingsSummary handles GET /v1/owner/ratings/summary.
//
// @Summary      Aggregate rating summary for the owner's properties
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ratingSummaryResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/owner/ratings/summary [get]
func (h *ReviewHandler) RatingsSummary(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	summary, err := h.service.OwnerRatingsSummary(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRatingSummaryResponse(summary))
}

// MarkHelpful handles POST /v1/reviews/:id/helpful.
//
// @Summary      Increment a review's helpful counter
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Review ID"
// @Success      200  {object}  reviewResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/reviews/{id}/helpful [post]
func (h *ReviewHandler) MarkHelpful(c echo.Context) error {
	review, err := h.service.MarkHelpful(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toReviewResponse(review))
}

// Report handles POST /v1/reviews/:id/report.
//
// @Summary      Flag a review for moderation
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Review ID"
// @Success      200  {object}  reviewResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/reviews/{id}/report [post]
func (h *ReviewHandler) Report(c echo.Context) error {
	review, err := h.service.ReportReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toReviewResponse(review))
}
