package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stayhaven/booking-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrBookingNotFound, http.StatusNotFound},
		{domain.ErrPropertyNotFound, http.StatusNotFound},
		{domain.ErrReviewNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrInvalidDateRange, http.StatusBadRequest},
		{domain.ErrInvalidGuests, http.StatusBadRequest},
		{domain.ErrInvalidRating, http.StatusBadRequest},
		{domain.ErrReviewTooLong, http.StatusBadRequest},
		{domain.ErrPropertyInactive, http.StatusUnprocessableEntity},
		{domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{domain.ErrBookingNotCompleted, http.StatusUnprocessableEntity},
		{domain.ErrDuplicateReview, http.StatusConflict},
		{domain.ErrDateConflict, http.StatusConflict},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		rec, body := renderError(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["error"] != tc.err.Error() {
			t.Errorf("%v: expected message %q, got %v", tc.err, tc.err.Error(), body["error"])
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("%w (from confirmed to pending)", domain.ErrInvalidTransition)
	rec, _ := renderError(t, wrapped)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("wrapped domain error must still map, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
	if body["error"] != "short and stout" {
		t.Fatalf("unexpected message: %v", body["error"])
	}
}

func TestHTTPErrorHandler_UnexpectedErrorHidesDetails(t *testing.T) {
	rec, body := renderError(t, errors.New("mongo topology closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal details must not leak: %v", body["error"])
	}
}
