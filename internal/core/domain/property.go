package domain

import (
	"errors"
	"time"
)

var ErrPropertyNotFound = errors.New("property not found")
var ErrPropertyInactive = errors.New("property is not active")

// Property is a bookable listing owned by exactly one owner user.
type Property struct {
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
