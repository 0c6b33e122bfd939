package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stayhaven/booking-system/internal/core/domain"
	"github.com/stayhaven/booking-system/internal/core/ports"
)

type stubBookingService struct {
	createFn     func(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error)
	transitionFn func(ctx context.Context, input ports.TransitionBookingInput) (*domain.Booking, error)
	listMineFn   func(ctx context.Context, customerID string) ([]*domain.Booking, error)
	listOwnerFn  func(ctx context.Context, ownerID string) ([]*domain.Booking, error)
}

func (s *stubBookingService) CreateBooking(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	return s.createFn(ctx, input)
}

func (s *stubBookingService) TransitionBooking(ctx context.Context, input ports.TransitionBookingInput) (*domain.Booking, error) {
	return s.transitionFn(ctx, input)
}

func (s *stubBookingService) ListBookingsForCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	return s.listMineFn(ctx, customerID)
}

func (s *stubBookingService) ListBookingsForOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	return s.listOwnerFn(ctx, ownerID)
}

func (s *stubBookingService) CompleteDueBookings(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

func authedContext(t *testing.T, method, path, body, userID, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newTestContext(t, method, path, body)
	c.Set("user_id", userID)
	c.Set("role", role)
	return c, rec
}

func TestBookingHandler_Create_Success(t *testing.T) {
	stub := &stubBookingService{
		createFn: func(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
			if input.CustomerID != "cust_1" {
				t.Fatalf("customer id must come from claims, got %q", input.CustomerID)
			}
			if input.Guests != 2 {
				t.Fatalf("unexpected guests: %d", input.Guests)
			}
			return &domain.Booking{
				ID:          "bkg_1",
				CustomerID:  input.CustomerID,
				PropertyID:  input.PropertyID,
				Status:      domain.StatusPending,
				Nights:      2,
				TotalAmount: 325,
			}, nil
		},
	}
	handler := NewBookingHandler(stub)

	body := `{"property_id":"prop_1","check_in":"2024-01-01T00:00:00Z","check_out":"2024-01-03T00:00:00Z","guests":2}`
	c, rec := authedContext(t, http.MethodPost, "/v1/bookings", body, "cust_1", domain.RoleCustomer)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "pending" || resp["total_amount"] != float64(325) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestBookingHandler_Create_MissingClaims(t *testing.T) {
	stub := &stubBookingService{
		createFn: func(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewBookingHandler(stub)

	body := `{"property_id":"prop_1","check_in":"2024-01-01T00:00:00Z","check_out":"2024-01-03T00:00:00Z","guests":2}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/bookings", body)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected HTTP 401 error, got %v", err)
	}
}

func TestBookingHandler_Transition_PassesActorAndTarget(t *testing.T) {
	stub := &stubBookingService{
		transitionFn: func(ctx context.Context, input ports.TransitionBookingInput) (*domain.Booking, error) {
			if input.BookingID != "bkg_1" || input.ActorID != "owner_1" || input.Target != domain.StatusConfirmed {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Booking{ID: "bkg_1", Status: domain.StatusConfirmed}, nil
		},
	}
	handler := NewBookingHandler(stub)

	c, rec := authedContext(t, http.MethodPost, "/v1/bookings/bkg_1/status",
		`{"status":"confirmed"}`, "owner_1", domain.RoleOwner)
	c.SetParamNames("id")
	c.SetParamValues("bkg_1")

	if err := handler.Transition(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBookingHandler_Transition_RejectsUnknownStatus(t *testing.T) {
	stub := &stubBookingService{
		transitionFn: func(ctx context.Context, input ports.TransitionBookingInput) (*domain.Booking, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewBookingHandler(stub)

	c, _ := authedContext(t, http.MethodPost, "/v1/bookings/bkg_1/status",
		`{"status":"pending"}`, "owner_1", domain.RoleOwner)
	c.SetParamNames("id")
	c.SetParamValues("bkg_1")

	err := handler.Transition(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected HTTP 400 error, got %v", err)
	}
}

func TestBookingHandler_ListMine_WrapsData(t *testing.T) {
	stub := &stubBookingService{
		listMineFn: func(ctx context.Context, customerID string) ([]*domain.Booking, error) {
			if customerID != "cust_1" {
				t.Fatalf("unexpected customer id: %s", customerID)
			}
			return []*domain.Booking{{ID: "bkg_1"}, {ID: "bkg_2"}}, nil
		},
	}
	handler := NewBookingHandler(stub)

	c, rec := authedContext(t, http.MethodGet, "/v1/bookings", "", "cust_1", domain.RoleCustomer)

	if err := handler.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data"`) {
		t.Fatalf("expected data envelope, got %s", rec.Body.String())
	}

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(resp.Data))
	}
}
