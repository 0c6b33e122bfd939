package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stayhaven/booking-system/internal/api/metrics"
	"github.com/stayhaven/booking-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

// domainErrorMapping pairs a sentinel error with its HTTP status and the
// metric reason label. Order matters only for readability; errors.Is does the
// matching.
var domainErrorMapping = []struct {
	err    error
	code   int
	reason string
}{
	{domain.ErrBookingNotFound, http.StatusNotFound, "booking_not_found"},
	{domain.ErrPropertyNotFound, http.StatusNotFound, "property_not_found"},
	{domain.ErrReviewNotFound, http.StatusNotFound, "review_not_found"},
	{domain.ErrUserNotFound, http.StatusNotFound, "user_not_found"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrInvalidDateRange, http.StatusBadRequest, "invalid_date_range"},
	{domain.ErrInvalidGuests, http.StatusBadRequest, "invalid_guests"},
	{domain.ErrInvalidRating, http.StatusBadRequest, "invalid_rating"},
	{domain.ErrReviewTooLong, http.StatusBadRequest, "review_too_long"},
	{domain.ErrPropertyInactive, http.StatusUnprocessableEntity, "property_inactive"},
	{domain.ErrInvalidTransition, http.StatusUnprocessableEntity, "invalid_transition"},
	{domain.ErrBookingNotCompleted, http.StatusUnprocessableEntity, "booking_not_completed"},
	{domain.ErrDuplicateReview, http.StatusConflict, "duplicate_review"},
	{domain.ErrDateConflict, http.StatusConflict, "date_conflict"},
	{domain.ErrUserExists, http.StatusConflict, "user_exists"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes.
	for _, m := range domainErrorMapping {
		if errors.Is(err, m.err) {
			metrics.RequestErrorsTotal.WithLabelValues(m.reason).Inc()
			return m.code, err.Error()
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
