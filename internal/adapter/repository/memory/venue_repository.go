package memory

import (
	"context"

	"github.com/srgjo27/seat_selection/internal/core/domain"
)

type VenueRepository struct {
	venues map[string]*domain.Venue
}

func NewVenueRepository(venues ...*domain.Venue) *VenueRepository {
	r := &VenueRepository{venues: make(map[string]*domain.Venue, len(venues))}
	for _, v := range venues {
		r.venues[v.ID] = v
	}

	return r
}

func (r *VenueRepository) GetVenue(_ context.Context, venueID string) (*domain.Venue, error) {
	v, ok := r.venues[venueID]
	if !ok {
		return nil, domain.ErrVenueNotFound
	}

	return v, nil
}
