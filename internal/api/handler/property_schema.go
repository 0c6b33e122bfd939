package handler

import (
	"time"

	"github.com/stayhaven/booking-system/internal/core/domain"
)

type createPropertyRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	City          string  `json:"city" validate:"required"`
	Country       string  `json:"country" validate:"required"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	MaxGuests     int     `json:"max_guests" validate:"required,min=1"`
}

type updatePropertyRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	City          string  `json:"city" validate:"required"`
	Country       string  `json:"country" validate:"required"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	MaxGuests     int     `json:"max_guests" validate:"required,min=1"`
	Active        bool    `json:"active"`
}

type propertyResponse struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	PricePerNight float64   `json:"price_per_night"`
	MaxGuests     int       `json:"max_guests"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type listPropertiesResponse struct {
	Data []propertyResponse `json:"data"`
}

func toPropertyResponse(property *domain.Property) propertyResponse {
	return propertyResponse{
		ID:            property.ID,
		OwnerID:       property.OwnerID,
		Title:         property.Title,
		Description:   property.Description,
		City:          property.City,
		Country:       property.Country,
		PricePerNight: property.PricePerNight,
		MaxGuests:     property.MaxGuests,
		Active:        property.Active,
		CreatedAt:     property.CreatedAt,
		UpdatedAt:     property.UpdatedAt,
	}
}

func toListPropertiesResponse(properties []*domain.Property) listPropertiesResponse {
	data := make([]propertyResponse, 0, len(properties))
	for _, p := range properties {
		data = append(data, toPropertyResponse(p))
	}
	return listPropertiesResponse{Data: data}
}
