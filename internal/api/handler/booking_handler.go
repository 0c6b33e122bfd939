package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhaven/booking-system/internal/core/domain"
	"github.com/stayhaven/booking-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /v1/bookings.
//
// @Summary      Create a new booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
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

	booking, err := h.service.CreateBooking(c.Request().Context(), ports.CreateBookingInput{
		CustomerID: userID,
		PropertyID: req.PropertyID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// Transition handles POST /v1/bookings/:id/status.
//
// @Summary      Change a booking's status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Booking ID"
// @Param        body  body      transitionBookingRequest  true  "Target status"
// @Success      200   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings/{id}/status [post]
func (h *BookingHandler) Transition(c echo.Context) error {
	var req transitionBookingRequest
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

	booking, err := h.service.TransitionBooking(c.Request().Context(), ports.TransitionBookingInput{
		BookingID: c.Param("id"),
		ActorID:   userID,
		Target:    domain.BookingStatus(req.Status),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookingResponse(booking))
}

// ListMine handles GET /v1/bookings, the caller's own bookings.
//
// @Summary      List the caller's bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listBookingsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/bookings [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListBookingsForCustomer(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListBookingsResponse(bookings))
}

// ListForOwner handles GET /v1/owner/bookings, bookings on the owner's properties.
//
// @Summary      List bookings on the owner's properties
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listBookingsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/owner/bookings [get]
func (h *BookingHandler) ListForOwner(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListBookingsForOwner(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListBookingsResponse(bookings))
}
