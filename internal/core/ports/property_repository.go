package ports

import (
	"context"

	"github.com/stayhaven/booking-system/internal/core/domain"
)

// PropertyRepository defines persistence operations for properties.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	// ListByOwner returns every property owned by the given user.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Property, error)
	// List returns properties, restricted to active ones when activeOnly is set.
	List(ctx context.Context, activeOnly bool) ([]*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
}
