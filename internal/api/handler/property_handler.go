package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhaven/booking-system/internal/core/ports"
)

// PropertyHandler handles HTTP requests for property listings.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// Create handles POST /v1/properties.
//
// @Summary      List a new property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Property details"
// @Success      201   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	var req createPropertyRequest
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

	property, err := h.service.CreateProperty(c.Request().Context(), ports.CreatePropertyInput{
		OwnerID:       userID,
		Title:         req.Title,
		Description:   req.Description,
		City:          req.City,
		Country:       req.Country,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPropertyResponse(property))
}

// Get handles GET /v1/properties/:id.
//
// @Summary      Fetch one property
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property ID"
// @Success      200  {object}  propertyResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	property, err := h.service.GetProperty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// List handles GET /v1/properties, active listings only.
//
// @Summary      List active properties
// @Tags         properties
// @Produce      json
// @Success      200  {object}  listPropertiesResponse
// @Router       /v1/properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	properties, err := h.service.ListProperties(c.Request().Context(), true)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListPropertiesResponse(properties))
}

// ListForOwner handles GET /v1/owner/properties, including inactive listings.
//
// @Summary      List the owner's properties
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listPropertiesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/owner/properties [get]
func (h *PropertyHandler) ListForOwner(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	properties, err := h.service.ListOwnerProperties(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListPropertiesResponse(properties))
}

// Update handles PUT /v1/properties/:id.
//
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Property ID"
// @Param        body  body      updatePropertyRequest  true  "Property details"
// @Success      200   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	var req updatePropertyRequest
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

	property, err := h.service.UpdateProperty(c.Request().Context(), ports.UpdatePropertyInput{
		PropertyID:    c.Param("id"),
		ActorID:       userID,
		Title:         req.Title,
		Description:   req.Description,
		City:          req.City,
		Country:       req.Country,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Active:        req.Active,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPropertyResponse(property))
}
