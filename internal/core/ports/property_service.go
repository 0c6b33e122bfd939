package ports

import (
	"context"

	"github.com/stayhaven/booking-system/internal/core/domain"
)

// CreatePropertyInput carries all data needed to list a new property.
type CreatePropertyInput struct {
	OwnerID       string
	Title         string
	Description   string
	City          string
	Country       string
	PricePerNight float64
	MaxGuests     int
}

// UpdatePropertyInput carries a full replacement of the mutable property
// fields. ActorID must match the property owner.
type UpdatePropertyInput struct {
	PropertyID    string
	ActorID       string
	Title         string
	Description   string
	City          string
	Country       string
	PricePerNight float64
	MaxGuests     int
	Active        bool
}

// PropertyService defines use-case operations for properties.
type PropertyService interface {
	CreateProperty(ctx context.Context, input CreatePropertyInput) (*domain.Property, error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	ListProperties(ctx context.Context, activeOnly bool) ([]*domain.Property, error)
	ListOwnerProperties(ctx context.Context, ownerID string) ([]*domain.Property, error)
	UpdateProperty(ctx context.Context, input UpdatePropertyInput) (*domain.Property, error)
}
