package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayhaven/booking-system/internal/core/domain"
	"github.com/stayhaven/booking-system/internal/core/ports"
)

// PropertyService implements property listing management.
type PropertyService struct {
	repo   ports.PropertyRepository
	logger zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, logger: logger}
}

// CreateProperty persists a new active property for the owner.
func (s *PropertyService) CreateProperty(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	now := time.Now().UTC()
	property := &domain.Property{
		OwnerID:       input.OwnerID,
		Title:         input.Title,
		Description:   input.Description,
		City:          input.City,
		Country:       input.Country,
		PricePerNight: input.PricePerNight,
		MaxGuests:     input.MaxGuests,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, property)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", input.OwnerID).Msg("failed to create property")
		return nil, err
	}

	s.logger.Info().Str("property_id", created.ID).Str("owner_id", input.OwnerID).Msg("property created")
	return created, nil
}

func (s *PropertyService) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) ListProperties(ctx context.Context, activeOnly bool) ([]*domain.Property, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *PropertyService) ListOwnerProperties(ctx context.Context, ownerID string) ([]*domain.Property, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// UpdateProperty replaces the mutable property fields. Only the owner may
// update; deactivation happens here via the Active flag.
func (s *PropertyService) UpdateProperty(ctx context.Context, input ports.UpdatePropertyInput) (*domain.Property, error) {
	property, err := s.repo.FindByID(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if property.OwnerID != input.ActorID {
		return nil, domain.ErrForbidden
	}

	property.Title = input.Title
	property.Description = input.Description
	property.City = input.City
	property.Country = input.Country
	property.PricePerNight = input.PricePerNight
	property.MaxGuests = input.MaxGuests
	property.Active = input.Active
	property.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}
